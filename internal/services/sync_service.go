// Package services - SyncService
//
// Explicit synchronization commands: a forced refresh that also snapshots
// the inferred schema profile, and a repair pass that rewrites every record
// to the union shape of its collection.
package services

import (
	"context"

	"github.com/dropforge/catalog-bot/internal/schema"
)

// SyncResult summarizes a forced refresh or repair.
type SyncResult struct {
	Products int    `json:"products"`
	Drops    int    `json:"drops"`
	DropsKey string `json:"drops_key"`
	Repaired int    `json:"repaired,omitempty"`
}

// SyncService runs the explicit sync and repair commands.
type SyncService struct {
	Sync   DocumentSync
	Guilds GuildStore
}

// NewSyncService constructs a SyncService.
func NewSyncService(sync DocumentSync, guilds GuildStore) *SyncService {
	return &SyncService{Sync: sync, Guilds: guilds}
}

// Resync bypasses the cache, re-fetches the document, and refreshes the
// guild's stored schema profile from a sample record (first product, or
// first drop when the catalog is empty). A profile store failure is
// swallowed; the profile is advisory and the fresh document matters more.
func (s *SyncService) Resync(ctx context.Context, guildID string) (*SyncResult, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, true)
	if err != nil {
		return nil, err
	}

	dropsKey := schema.DetectDropsKey(doc)
	products := schema.Records(doc, schema.ProductsKey)
	drops := schema.Records(doc, dropsKey)

	var sample schema.Record
	if len(products) > 0 {
		sample = products[0]
	} else if len(drops) > 0 {
		sample = drops[0]
	}
	if sample != nil {
		if profile, err := schema.ProfileJSON(schema.DetectFields(sample)); err == nil {
			_ = s.Guilds.UpsertGuildConfig(ctx, guildID, nil, nil, &profile, nil)
		}
	}

	return &SyncResult{
		Products: len(products),
		Drops:    len(drops),
		DropsKey: dropsKey,
	}, nil
}

// Repair re-fetches the document, normalizes both collections so every
// record carries the union of fields seen in its collection, and writes the
// result back. Repaired counts records whose shape actually changed.
func (s *SyncService) Repair(ctx context.Context, guildID string) (*SyncResult, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, true)
	if err != nil {
		return nil, err
	}

	dropsKey := schema.DetectDropsKey(doc)
	products := schema.Records(doc, schema.ProductsKey)
	drops := schema.Records(doc, dropsKey)

	repaired := 0
	fixedProducts := schema.NormalizeCollection(products)
	for i := range fixedProducts {
		if len(fixedProducts[i]) != len(products[i]) {
			repaired++
		}
	}
	fixedDrops := schema.NormalizeCollection(drops)
	for i := range fixedDrops {
		if len(fixedDrops[i]) != len(drops[i]) {
			repaired++
		}
	}

	if len(fixedProducts) > 0 {
		schema.SetRecords(doc, schema.ProductsKey, fixedProducts)
	}
	if len(fixedDrops) > 0 {
		schema.SetRecords(doc, dropsKey, fixedDrops)
	}

	if err := s.Sync.Update(ctx, guildID, doc); err != nil {
		return nil, err
	}
	return &SyncResult{
		Products: len(fixedProducts),
		Drops:    len(fixedDrops),
		DropsKey: dropsKey,
		Repaired: repaired,
	}, nil
}
