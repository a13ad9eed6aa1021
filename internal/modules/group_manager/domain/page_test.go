package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupsWithCounts(counts ...int) []Group {
	groups := make([]Group, len(counts))
	for i, c := range counts {
		groups[i] = NewGroup(fmt.Sprintf("group-%d", i), c, "")
	}
	return groups
}

func flatten(pages []Page) []Group {
	var out []Group
	for _, p := range pages {
		out = append(out, p.Groups...)
	}
	return out
}

func TestPaginate_PageCountAndSizes(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		pageSize  int
		wantSizes []int
	}{
		{name: "nine results", count: 9, pageSize: 4, wantSizes: []int{4, 4, 1}},
		{name: "exact multiple", count: 8, pageSize: 4, wantSizes: []int{4, 4}},
		{name: "single page", count: 3, pageSize: 4, wantSizes: []int{3}},
		{name: "one result", count: 1, pageSize: 4, wantSizes: []int{1}},
		{name: "page size one", count: 3, pageSize: 1, wantSizes: []int{1, 1, 1}},
		{name: "no results", count: 0, pageSize: 4, wantSizes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := make([]int, tt.count)
			for i := range counts {
				counts[i] = i
			}

			pages := Paginate(groupsWithCounts(counts...), tt.pageSize)

			require.Len(t, pages, len(tt.wantSizes))
			for i, p := range pages {
				assert.Len(t, p.Groups, tt.wantSizes[i], "page %d size", i+1)
				assert.Equal(t, i+1, p.Number)
				assert.Equal(t, len(tt.wantSizes), p.Total)
			}
		})
	}
}

func TestPaginate_ConcatenationEqualsSortedInput(t *testing.T) {
	groups := groupsWithCounts(3, 10, 1, 7, 7, 0, 12, 5, 2, 9, 4)

	pages := Paginate(groups, 4)

	assert.Equal(t, SortByMemberCount(groups), flatten(pages))
}

func TestPaginate_SortsByMemberCountDescending(t *testing.T) {
	pages := Paginate(groupsWithCounts(1, 5, 3), 4)

	require.Len(t, pages, 1)
	got := []int{pages[0].Groups[0].MemberCount, pages[0].Groups[1].MemberCount, pages[0].Groups[2].MemberCount}
	assert.Equal(t, []int{5, 3, 1}, got)
}

func TestPaginate_StableForEqualMemberCounts(t *testing.T) {
	groups := []Group{
		NewGroup("a", 2, ""),
		NewGroup("b", 5, ""),
		NewGroup("c", 2, ""),
		NewGroup("d", 5, ""),
		NewGroup("e", 2, ""),
		NewGroup("f", 5, ""),
	}

	pages := Paginate(groups, 4)

	names := make([]string, 0, len(groups))
	for _, g := range flatten(pages) {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"b", "d", "f", "a", "c", "e"}, names)
}

func TestPaginate_DoesNotModifyInput(t *testing.T) {
	groups := groupsWithCounts(1, 2, 3, 4, 5)
	original := append([]Group(nil), groups...)

	_ = Paginate(groups, 2)

	assert.Equal(t, original, groups)
}

func TestPaginate_NonPositivePageSizeUsesDefault(t *testing.T) {
	pages := Paginate(groupsWithCounts(1, 2, 3, 4, 5), 0)

	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Groups, DefaultPageSize)
}
