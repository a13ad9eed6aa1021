package domain

import (
	"fmt"
	"strings"
)

// SearchQuery represents a group search, optionally filtered by name.
type SearchQuery struct {
	Name string // Empty means all groups
}

// NewSearchQuery creates a SearchQuery from user input.
func NewSearchQuery(name string) SearchQuery {
	return SearchQuery{Name: strings.TrimSpace(name)}
}

// IsAll returns true if the query matches every group.
func (q SearchQuery) IsAll() bool {
	return q.Name == ""
}

// Heading returns the sentence shown above every result page.
func (q SearchQuery) Heading() string {
	if q.IsAll() {
		return "Results for all groups"
	}
	return "Results for group " + q.Name
}

// Caption returns the heading followed by the page position, e.g.
// "Results for all groups (Page 1 / 3)".
func (q SearchQuery) Caption(page Page) string {
	return fmt.Sprintf("%s (Page %d / %d)", q.Heading(), page.Number, page.Total)
}
