package domain

import (
	"slices"

	"github.com/samber/lo"
)

// DefaultPageSize is the number of groups shown on one result page.
const DefaultPageSize = 4

// Page is one slice of sorted search results.
type Page struct {
	Groups []Group
	Number int // 1-indexed
	Total  int
}

// SortByMemberCount returns a copy of groups ordered by member count,
// largest first. Groups with equal counts keep their input order.
func SortByMemberCount(groups []Group) []Group {
	sorted := slices.Clone(groups)
	slices.SortStableFunc(sorted, func(a, b Group) int {
		return b.MemberCount - a.MemberCount
	})
	return sorted
}

// Paginate sorts groups by member count and splits them into pages of
// pageSize. The input slice is not modified. Zero groups yield no pages.
func Paginate(groups []Group, pageSize int) []Page {
	if len(groups) == 0 {
		return nil
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	chunks := lo.Chunk(SortByMemberCount(groups), pageSize)

	return lo.Map(chunks, func(chunk []Group, i int) Page {
		return Page{
			Groups: chunk,
			Number: i + 1,
			Total:  len(chunks),
		}
	})
}
