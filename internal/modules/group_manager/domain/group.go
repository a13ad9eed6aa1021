package domain

// Group is a summary of a user group as returned by a search.
type Group struct {
	Name        string
	MemberCount int
	Description *string
}

// NewGroup creates a Group. An empty description is stored as nil.
func NewGroup(name string, memberCount int, description string) Group {
	g := Group{
		Name:        name,
		MemberCount: memberCount,
	}
	if description != "" {
		g.Description = &description
	}
	return g
}

// DescriptionOr returns the description, or fallback if the group has none.
func (g Group) DescriptionOr(fallback string) string {
	if g.Description == nil || *g.Description == "" {
		return fallback
	}
	return *g.Description
}
