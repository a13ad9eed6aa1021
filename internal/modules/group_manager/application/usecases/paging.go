package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// DefaultWaitWindow is how long a paging session waits for each navigation reaction.
const DefaultWaitWindow = 60 * time.Second

// PagingInput contains the input for the Run use case.
type PagingInput struct {
	Query   domain.SearchQuery
	Session *domain.PagingSession
}

// PagingService drives a paginated message: it waits for the owner's
// navigation reactions and edits the message in place until the wait window
// lapses with no qualifying reaction.
type PagingService struct {
	messenger ports.Messenger
	reactions ports.ReactionSource
	window    time.Duration
}

// NewPagingService creates a new PagingService.
func NewPagingService(
	messenger ports.Messenger,
	reactions ports.ReactionSource,
	window time.Duration,
) *PagingService {
	if window <= 0 {
		window = DefaultWaitWindow
	}
	return &PagingService{
		messenger: messenger,
		reactions: reactions,
		window:    window,
	}
}

// Run attaches the navigation reactions to the session's message and handles
// navigation until the session ends. It blocks for the lifetime of the session.
// A lapsed wait window or a cancelled context ends the session without error.
func (p *PagingService) Run(ctx context.Context, input PagingInput) error {
	session := input.Session
	logger := slog.With(
		"session_id", uuid.NewString(),
		"message_id", session.MessageID(),
		"owner_id", session.OwnerID(),
	)

	// Subscribe before reacting so no early press is missed.
	sub := p.reactions.Subscribe(session.MessageID())
	defer sub.Close()

	for _, emoji := range domain.NavigationEmojis {
		if err := p.messenger.AddReaction(
			ctx,
			session.ChannelID(),
			session.MessageID(),
			emoji,
		); err != nil {
			return fmt.Errorf("failed to add navigation reaction: %w", err)
		}
	}

	logger.Debug("started paging session", "pages", session.Len())

	for {
		direction, err := p.awaitNavigation(ctx, sub, session)
		switch {
		case errors.Is(err, ErrInputTimeout):
			logger.Debug("paging session expired", "page", session.Current().Number)
			return nil
		case isCancellation(err):
			logger.Debug("paging session cancelled", "page", session.Current().Number)
			return nil
		case err != nil:
			return err
		}

		page := session.Move(direction)

		if err := p.messenger.EditPage(
			ctx,
			session.ChannelID(),
			session.MessageID(),
			session.OwnerID(),
			ports.ResultPage{Query: input.Query, Page: page},
		); err != nil {
			if isCancellation(err) {
				logger.Debug("paging session cancelled during edit", "page", page.Number)
				return nil
			}
			return fmt.Errorf("failed to edit result page: %w", err)
		}

		if err := p.messenger.RemoveReaction(
			ctx,
			session.ChannelID(),
			session.MessageID(),
			session.OwnerID(),
			direction.Emoji(),
		); err != nil {
			if isCancellation(err) {
				logger.Debug("paging session cancelled during reaction removal", "page", page.Number)
				return nil
			}
			return fmt.Errorf("failed to remove navigation reaction: %w", err)
		}

		logger.Debug("turned page", "direction", direction.String(), "page", page.Number)
	}
}

// awaitNavigation blocks until the session owner presses a navigation reaction
// or the wait window lapses. Other reactions are skipped without restarting the window.
func (p *PagingService) awaitNavigation(
	ctx context.Context,
	sub ports.ReactionSubscription,
	session *domain.PagingSession,
) (domain.Direction, error) {
	timer := time.NewTimer(p.window)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-timer.C:
			return 0, ErrInputTimeout
		case event, ok := <-sub.Events():
			if !ok {
				return 0, ErrInputClosed
			}
			if direction, ok := session.Accepts(event); ok {
				return direction, nil
			}
		}
	}
}

// isCancellation reports whether err comes from the session context ending.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
