// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for permission
// grants (per-guild user/role capability levels).
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dropforge/catalog-bot/internal/domain"
)

// ListPermissions returns every grant for guildID, oldest first. It returns
// an empty slice when the guild has no grants.
func ListPermissions(ctx context.Context, db *gorm.DB, guildID string) ([]domain.Permission, error) {
	var out []domain.Permission
	err := db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("created_at asc").
		Find(&out).Error
	return out, err
}

// SetPermission grants level to (targetType, targetID) within guildID,
// overwriting any previous level for the same target (idempotent upsert).
func SetPermission(ctx context.Context, db *gorm.DB, guildID, targetType, targetID, level, grantedBy string) error {
	row := &domain.Permission{
		GuildID:    guildID,
		TargetType: targetType,
		TargetID:   targetID,
		Level:      level,
		GrantedBy:  grantedBy,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "guild_id"}, {Name: "target_type"}, {Name: "target_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"level":      level,
				"granted_by": grantedBy,
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(row).Error
}

// RemovePermission deletes the grant for (targetType, targetID) in guildID.
// It returns ErrNotFound when no such grant exists.
func RemovePermission(ctx context.Context, db *gorm.DB, guildID, targetType, targetID string) error {
	res := db.WithContext(ctx).
		Where("guild_id = ? AND target_type = ? AND target_id = ?", guildID, targetType, targetID).
		Delete(&domain.Permission{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
