package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/application/ports"
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// SearchInput contains the input for the Search use case.
type SearchInput struct {
	Query            domain.SearchQuery
	OwnerID          snowflake.ID // User who ran the search
	ChannelID        snowflake.ID
	TriggerMessageID snowflake.ID // Optional: message to reply to when nothing matches
}

// SearchOutput contains the result of the Search use case.
type SearchOutput struct {
	TotalGroups int
	TotalPages  int
	MessageID   snowflake.ID // Zero when nothing matched

	// Session is non-nil only when the results span more than one page.
	Session *domain.PagingSession
}

// GroupSearchService looks up groups and sends the first result page.
type GroupSearchService struct {
	repo      domain.GroupRepository
	messenger ports.Messenger
	pageSize  int
}

// NewGroupSearchService creates a new GroupSearchService.
func NewGroupSearchService(
	repo domain.GroupRepository,
	messenger ports.Messenger,
	pageSize int,
) *GroupSearchService {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &GroupSearchService{
		repo:      repo,
		messenger: messenger,
		pageSize:  pageSize,
	}
}

// Search finds the groups matching the query and sends the first page.
// If nothing matches, a short notice is sent instead and no session is created.
func (s *GroupSearchService) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	groups, err := s.repo.FindGroups(ctx, input.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to find groups: %w", err)
	}

	pages := domain.Paginate(groups, s.pageSize)
	if len(pages) == 0 {
		if err := s.messenger.SendText(
			ctx,
			input.ChannelID,
			input.TriggerMessageID,
			NoResultsMessage,
		); err != nil {
			return nil, fmt.Errorf("failed to send no results message: %w", err)
		}
		return &SearchOutput{}, nil
	}

	messageID, err := s.messenger.SendPage(ctx, input.ChannelID, ports.ResultPage{
		Query: input.Query,
		Page:  pages[0],
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send result page: %w", err)
	}

	output := &SearchOutput{
		TotalGroups: len(groups),
		TotalPages:  len(pages),
		MessageID:   messageID,
	}

	if len(pages) > 1 {
		session, err := domain.NewPagingSession(input.OwnerID, input.ChannelID, messageID, pages)
		if err != nil {
			return nil, err
		}
		output.Session = session
	}

	slog.Debug("sent group search results",
		"query", input.Query.Name,
		"groups", output.TotalGroups,
		"pages", output.TotalPages,
	)

	return output, nil
}
