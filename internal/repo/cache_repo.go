// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the durable
// document cache.
//
// The cache table is a staleness buffer in front of the remote gist API: one
// row per guild holding the serialized document and the unix-seconds fetch
// time. TTL comparison is the sync layer's job; the repository never expires
// or evicts rows on its own.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dropforge/catalog-bot/internal/domain"
)

// GetCacheEntry returns the cached document snapshot for guildID, or
// ErrNotFound when the guild was never fetched.
func GetCacheEntry(ctx context.Context, db *gorm.DB, guildID string) (*domain.CacheEntry, error) {
	var entry domain.CacheEntry
	err := db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// PutCacheEntry upserts the snapshot for guildID, always resetting the
// fetch timestamp to now (unix seconds).
func PutCacheEntry(ctx context.Context, db *gorm.DB, guildID, data string) error {
	row := &domain.CacheEntry{
		GuildID:   guildID,
		Data:      data,
		FetchedAt: time.Now().Unix(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "guild_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "fetched_at"}),
		}).
		Create(row).Error
}
