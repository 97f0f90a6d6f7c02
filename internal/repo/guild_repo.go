// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// GuildConfig model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a guild row is not found, GetGuildConfig returns ErrNotFound
//     (an alias of gorm.ErrRecordNotFound).
//   - On DB errors the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dropforge/catalog-bot/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetGuildConfig fetches the configuration row for guildID, or ErrNotFound.
func GetGuildConfig(ctx context.Context, db *gorm.DB, guildID string) (*domain.GuildConfig, error) {
	var cfg domain.GuildConfig
	err := db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpsertGuildConfig inserts or updates the configuration row for guildID
// with partial-update semantics: a nil argument never overwrites a stored
// value, matching COALESCE(excluded.col, col) on conflict. This lets setup
// steps run in any order (token first, gist ID later, or the reverse)
// without clobbering each other.
func UpsertGuildConfig(ctx context.Context, db *gorm.DB, guildID string, tokenEncrypted, gistID, schemaProfile, announceWebhook *string) error {
	row := &domain.GuildConfig{
		GuildID:            guildID,
		GistTokenEncrypted: tokenEncrypted,
		GistID:             gistID,
		SchemaProfile:      schemaProfile,
		AnnounceWebhook:    announceWebhook,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "guild_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"gist_token_encrypted": gorm.Expr("COALESCE(excluded.gist_token_encrypted, gist_token_encrypted)"),
				"gist_id":              gorm.Expr("COALESCE(excluded.gist_id, gist_id)"),
				"schema_profile":       gorm.Expr("COALESCE(excluded.schema_profile, schema_profile)"),
				"announce_webhook":     gorm.Expr("COALESCE(excluded.announce_webhook, announce_webhook)"),
				"updated_at":           gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(row).Error
}
