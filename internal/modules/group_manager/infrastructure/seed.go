package infrastructure

import (
	"context"
	"fmt"
	"os"

	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Groups []seedGroup `yaml:"groups"`
}

type seedGroup struct {
	Name        string `yaml:"name"`
	MemberCount int    `yaml:"member_count"`
	Description string `yaml:"description"`
}

// LoadGroupSeed reads groups from a YAML file of the form:
//
//	groups:
//	  - name: chess
//	    member_count: 12
//	    description: Weekly games
func LoadGroupSeed(path string) ([]domain.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read group seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse group seed file: %w", err)
	}

	groups := make([]domain.Group, 0, len(file.Groups))
	for i, g := range file.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("group seed entry %d has no name", i)
		}
		if g.MemberCount < 0 {
			return nil, fmt.Errorf("group seed entry %q has a negative member count", g.Name)
		}
		groups = append(groups, domain.NewGroup(g.Name, g.MemberCount, g.Description))
	}
	return groups, nil
}

// SeedMemoryRepository saves the groups read from path into repo.
// Entries with a name already present replace the stored group.
func SeedMemoryRepository(ctx context.Context, repo *MemoryRepository, path string) error {
	groups, err := LoadGroupSeed(path)
	if err != nil {
		return err
	}

	for _, g := range groups {
		if err := repo.Save(ctx, g); err != nil {
			return fmt.Errorf("failed to seed group %q: %w", g.Name, err)
		}
	}
	return nil
}
