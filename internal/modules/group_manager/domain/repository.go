package domain

import "context"

// GroupRepository defines the interface for looking up groups.
type GroupRepository interface {
	// FindGroups returns the groups matching query in store order.
	FindGroups(ctx context.Context, query SearchQuery) ([]Group, error)
}
