package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// ResultPage is a page of search results together with the query that produced it.
type ResultPage struct {
	Query domain.SearchQuery
	Page  domain.Page
}

// Messenger defines the interface for sending and editing result messages.
type Messenger interface {
	// SendText sends a plain text message, as a reply to replyTo if it is non-zero.
	SendText(ctx context.Context, channelID, replyTo snowflake.ID, text string) error

	// SendPage sends a result page to the channel and returns the message ID.
	SendPage(ctx context.Context, channelID snowflake.ID, page ResultPage) (snowflake.ID, error)

	// EditPage replaces the page shown by a message, mentioning the given user.
	EditPage(
		ctx context.Context,
		channelID, messageID, mentionUserID snowflake.ID,
		page ResultPage,
	) error

	// AddReaction adds the bot's reaction to a message.
	AddReaction(ctx context.Context, channelID, messageID snowflake.ID, emoji string) error

	// RemoveReaction removes a user's reaction from a message.
	RemoveReaction(ctx context.Context, channelID, messageID, userID snowflake.ID, emoji string) error
}
