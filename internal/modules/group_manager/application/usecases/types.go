package usecases

import (
	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// Re-export domain types for presentation layer use.

// SearchQuery is an alias for domain.SearchQuery.
type SearchQuery = domain.SearchQuery

// ReactionEvent is an alias for domain.ReactionEvent.
type ReactionEvent = domain.ReactionEvent

// NewSearchQuery creates a SearchQuery from user input.
var NewSearchQuery = domain.NewSearchQuery
