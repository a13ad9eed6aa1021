package infrastructure

import (
	"context"
	"sync"
	"testing"

	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupNames(groups []domain.Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func TestMemoryRepository_FindGroups_All(t *testing.T) {
	repo := NewMemoryRepository(
		domain.NewGroup("chess", 3, ""),
		domain.NewGroup("Go", 5, "the board game"),
	)

	groups, err := repo.FindGroups(context.Background(), domain.NewSearchQuery(""))
	require.NoError(t, err)

	assert.Equal(t, []string{"chess", "Go"}, groupNames(groups))
}

func TestMemoryRepository_FindGroups_FilterIgnoresCase(t *testing.T) {
	repo := NewMemoryRepository(
		domain.NewGroup("Chess", 3, ""),
		domain.NewGroup("speedchess", 1, ""),
		domain.NewGroup("go", 5, ""),
	)

	groups, err := repo.FindGroups(context.Background(), domain.NewSearchQuery("CHESS"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Chess", "speedchess"}, groupNames(groups))
}

func TestMemoryRepository_FindGroups_NoMatch(t *testing.T) {
	repo := NewMemoryRepository(domain.NewGroup("chess", 3, ""))

	groups, err := repo.FindGroups(context.Background(), domain.NewSearchQuery("poker"))
	require.NoError(t, err)

	assert.Empty(t, groups)
}

func TestMemoryRepository_SaveReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Save(ctx, domain.NewGroup("a", 1, "")))
	require.NoError(t, repo.Save(ctx, domain.NewGroup("b", 1, "")))
	require.NoError(t, repo.Save(ctx, domain.NewGroup("a", 7, "updated")))

	groups, err := repo.FindGroups(ctx, domain.NewSearchQuery(""))
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "a", groups[0].Name)
	assert.Equal(t, 7, groups[0].MemberCount)
	assert.Equal(t, "updated", groups[0].DescriptionOr(""))
}

func TestMemoryRepository_ResultsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(domain.NewGroup("a", 1, ""))

	groups, err := repo.FindGroups(ctx, domain.NewSearchQuery(""))
	require.NoError(t, err)
	groups[0].Name = "changed"

	again, err := repo.FindGroups(ctx, domain.NewSearchQuery(""))
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Name)
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, domain.NewGroup(string(rune('a'+i%26))+"-group", i, ""))
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.FindGroups(ctx, domain.NewSearchQuery("group"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 26, repo.Count())
}
