package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/bot"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/usecases"
)

// Handlers holds the Discord handlers for group commands and navigation reactions.
type Handlers struct {
	ctx       context.Context
	channels  *usecases.CommandChannelService
	search    *usecases.GroupSearchService
	paging    *usecases.PagingService
	reactions *usecases.ReactionInputService
}

// NewHandlers creates new Handlers. Paging sessions started by the handlers
// end when ctx is cancelled.
func NewHandlers(
	ctx context.Context,
	channels *usecases.CommandChannelService,
	search *usecases.GroupSearchService,
	paging *usecases.PagingService,
	reactions *usecases.ReactionInputService,
) *Handlers {
	return &Handlers{
		ctx:       ctx,
		channels:  channels,
		search:    search,
		paging:    paging,
		reactions: reactions,
	}
}

// HandleMessageCreate handles "!group search [<name>]" messages.
// The handler blocks until the resulting paging session ends.
func (h *Handlers) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	query, ok := parseSearchCommand(m.Content)
	if !ok {
		return
	}

	channelID, err := snowflake.Parse(m.ChannelID)
	if err != nil {
		slog.Error("failed to parse channel ID in message", "error", err)
		return
	}
	authorID, err := snowflake.Parse(m.Author.ID)
	if err != nil {
		slog.Error("failed to parse author ID in message", "error", err)
		return
	}
	messageID, err := snowflake.Parse(m.ID)
	if err != nil {
		slog.Error("failed to parse message ID", "error", err)
		return
	}

	allowed, err := h.channels.IsAllowed(channelID)
	if err != nil {
		slog.Error("failed to check command channel", "channel_id", channelID, "error", err)
		return
	}
	if !allowed {
		return
	}

	if err := h.runSearch(usecases.SearchInput{
		Query:            query,
		OwnerID:          authorID,
		ChannelID:        channelID,
		TriggerMessageID: messageID,
	}); err != nil {
		slog.Error("failed to handle group search", "channel_id", channelID, "error", err)
	}
}

// HandleGroup handles the /group command.
func (h *Handlers) HandleGroup(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0].Name != searchTrigger {
		return r.Respond(bot.EphemeralMessage("Unknown group subcommand."))
	}

	var name string
	for _, opt := range options[0].Options {
		if opt.Name == "name" {
			name = opt.StringValue()
		}
	}

	channelID, err := snowflake.Parse(i.ChannelID)
	if err != nil {
		return r.Respond(bot.EphemeralMessage("Invalid channel."))
	}
	userID, err := snowflake.Parse(interactionUserID(i))
	if err != nil {
		return r.Respond(bot.EphemeralMessage("Invalid user."))
	}

	allowed, err := h.channels.IsAllowed(channelID)
	if err != nil {
		return err
	}
	if !allowed {
		return r.Respond(bot.EphemeralMessage(fmt.Sprintf(
			"Group search is only available in %s.",
			formatChannelNames(h.channels.AllowedNames()),
		)))
	}

	if err := r.Respond(bot.EphemeralMessage("Searching groups...")); err != nil {
		return err
	}

	// The interaction is already answered, so failures are only logged.
	if err := h.runSearch(usecases.SearchInput{
		Query:     usecases.NewSearchQuery(name),
		OwnerID:   userID,
		ChannelID: channelID,
	}); err != nil {
		slog.Error("failed to handle group search", "channel_id", channelID, "error", err)
	}
	return nil
}

// HandleMessageReactionAdd forwards reactions to waiting paging sessions.
func (h *Handlers) HandleMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r == nil || r.MessageReaction == nil {
		return
	}

	// Ignore the bot's own navigation reactions
	if s != nil && s.State != nil && s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}

	messageID, err := snowflake.Parse(r.MessageID)
	if err != nil {
		slog.Error("failed to parse message ID in reaction", "error", err)
		return
	}
	userID, err := snowflake.Parse(r.UserID)
	if err != nil {
		slog.Error("failed to parse user ID in reaction", "error", err)
		return
	}

	h.reactions.Receive(usecases.ReactionEvent{
		MessageID: messageID,
		UserID:    userID,
		Emoji:     r.Emoji.Name,
	})
}

// runSearch sends the first result page and, when there is more than one,
// drives the paging session until it ends.
func (h *Handlers) runSearch(input usecases.SearchInput) error {
	output, err := h.search.Search(h.ctx, input)
	if err != nil {
		return err
	}
	if output.Session == nil {
		return nil
	}

	err = h.paging.Run(h.ctx, usecases.PagingInput{
		Query:   input.Query,
		Session: output.Session,
	})
	if errors.Is(err, usecases.ErrInputClosed) {
		slog.Warn("paging session lost its reaction feed", "message_id", output.MessageID)
		return nil
	}
	return err
}

// interactionUserID returns the invoking user for guild and DM interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func formatChannelNames(names []string) string {
	formatted := make([]string, len(names))
	for i, name := range names {
		formatted[i] = "#" + name
	}
	return strings.Join(formatted, ", ")
}
