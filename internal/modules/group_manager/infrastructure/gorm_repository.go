package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"github.com/sglre6355/yesbot/internal/modules/group_manager/domain"
	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards in user input.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// UserGroup is the stored form of a group.
type UserGroup struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description *string
	Members     []UserGroupMember `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// UserGroupMember links a Discord user to a group.
type UserGroupMember struct {
	ID      uint   `gorm:"primaryKey"`
	GroupID uint   `gorm:"index;not null"`
	UserID  string `gorm:"not null"`
}

// groupRow is the shape of a group summary query result.
type groupRow struct {
	Name        string
	Description *string
	MemberCount int
}

// GormGroupRepository reads group summaries from a SQL database.
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository.
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// Migrate creates or updates the group tables.
func (r *GormGroupRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&UserGroup{}, &UserGroupMember{})
}

// FindGroups returns the groups whose name contains the query name, ignoring
// case, in creation order with their member counts.
func (r *GormGroupRepository) FindGroups(
	ctx context.Context,
	query domain.SearchQuery,
) ([]domain.Group, error) {
	tx := r.db.WithContext(ctx).
		Model(&UserGroup{}).
		Select("user_groups.name, user_groups.description, COUNT(user_group_members.id) AS member_count").
		Joins("LEFT JOIN user_group_members ON user_group_members.group_id = user_groups.id").
		Group("user_groups.id, user_groups.name, user_groups.description").
		Order("user_groups.id")

	if !query.IsAll() {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query.Name)) + "%"
		tx = tx.Where(`LOWER(user_groups.name) LIKE ? ESCAPE '\'`, pattern)
	}

	var rows []groupRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}

	groups := make([]domain.Group, len(rows))
	for i, row := range rows {
		groups[i] = domain.Group{
			Name:        row.Name,
			MemberCount: row.MemberCount,
			Description: row.Description,
		}
	}
	return groups, nil
}

// Ensure GormGroupRepository implements GroupRepository.
var _ domain.GroupRepository = (*GormGroupRepository)(nil)
