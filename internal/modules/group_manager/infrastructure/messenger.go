package infrastructure

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
)

// Bot avatar size requested for embed authors.
const avatarSize = "256"

// Messenger sends and edits result messages through a Discord session.
type Messenger struct {
	session *discordgo.Session
}

// NewMessenger creates a new Messenger.
func NewMessenger(session *discordgo.Session) *Messenger {
	return &Messenger{session: session}
}

// SendText sends a plain text message, as a reply to replyTo if it is non-zero.
func (m *Messenger) SendText(
	ctx context.Context,
	channelID, replyTo snowflake.ID,
	text string,
) error {
	data := &discordgo.MessageSend{Content: text}
	if replyTo != 0 {
		data.Reference = &discordgo.MessageReference{
			MessageID: replyTo.String(),
			ChannelID: channelID.String(),
		}
	}

	_, err := m.session.ChannelMessageSendComplex(
		channelID.String(),
		data,
		discordgo.WithContext(ctx),
	)
	return err
}

// SendPage sends a result page embed to the channel and returns the message ID.
func (m *Messenger) SendPage(
	ctx context.Context,
	channelID snowflake.ID,
	page ports.ResultPage,
) (snowflake.ID, error) {
	msg, err := m.session.ChannelMessageSendComplex(
		channelID.String(),
		&discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{BuildResultEmbed(page, m.avatarURL())},
		},
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return 0, err
	}

	messageID, err := snowflake.Parse(msg.ID)
	if err != nil {
		return 0, err
	}
	return messageID, nil
}

// EditPage replaces the embed of a result message and mentions the given user.
func (m *Messenger) EditPage(
	ctx context.Context,
	channelID, messageID, mentionUserID snowflake.ID,
	page ports.ResultPage,
) error {
	edit := discordgo.NewMessageEdit(channelID.String(), messageID.String()).
		SetContent(mention(mentionUserID)).
		SetEmbeds([]*discordgo.MessageEmbed{BuildResultEmbed(page, m.avatarURL())})

	_, err := m.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	return err
}

// AddReaction adds the bot's reaction to a message.
func (m *Messenger) AddReaction(
	ctx context.Context,
	channelID, messageID snowflake.ID,
	emoji string,
) error {
	return m.session.MessageReactionAdd(
		channelID.String(),
		messageID.String(),
		emoji,
		discordgo.WithContext(ctx),
	)
}

// RemoveReaction removes a user's reaction from a message.
func (m *Messenger) RemoveReaction(
	ctx context.Context,
	channelID, messageID, userID snowflake.ID,
	emoji string,
) error {
	return m.session.MessageReactionRemove(
		channelID.String(),
		messageID.String(),
		emoji,
		userID.String(),
		discordgo.WithContext(ctx),
	)
}

// avatarURL returns the bot's avatar, or an empty string before the session is ready.
func (m *Messenger) avatarURL() string {
	if m.session.State == nil || m.session.State.User == nil {
		return ""
	}
	return m.session.State.User.AvatarURL(avatarSize)
}

func mention(userID snowflake.ID) string {
	return fmt.Sprintf("<@%s>", userID)
}

// Ensure Messenger implements ports.Messenger.
var _ ports.Messenger = (*Messenger)(nil)
