package infrastructure

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
)

// MemoryRepository is an in-memory implementation of GroupRepository.
// Groups are returned in the order they were first saved.
type MemoryRepository struct {
	mu     sync.RWMutex
	groups []domain.Group
}

// NewMemoryRepository creates a new MemoryRepository holding the given groups.
func NewMemoryRepository(groups ...domain.Group) *MemoryRepository {
	return &MemoryRepository{
		groups: slices.Clone(groups),
	}
}

// FindGroups returns the groups whose name contains the query name, ignoring case.
func (r *MemoryRepository) FindGroups(
	_ context.Context,
	query domain.SearchQuery,
) ([]domain.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if query.IsAll() {
		return slices.Clone(r.groups), nil
	}

	needle := strings.ToLower(query.Name)
	var matches []domain.Group
	for _, g := range r.groups {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

// Save stores the group, replacing any group with the same name in place.
func (r *MemoryRepository) Save(_ context.Context, group domain.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := slices.IndexFunc(r.groups, func(g domain.Group) bool {
		return g.Name == group.Name
	}); i >= 0 {
		r.groups[i] = group
		return nil
	}

	r.groups = append(r.groups, group)
	return nil
}

// Count returns the number of stored groups.
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.groups)
}

// Ensure MemoryRepository implements GroupRepository.
var _ domain.GroupRepository = (*MemoryRepository)(nil)
