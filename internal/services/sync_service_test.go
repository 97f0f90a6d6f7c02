package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dropforge/catalog-bot/internal/schema"
)

func TestResync_ForcesFetchAndCounts(t *testing.T) {
	sync := &fakeSync{doc: schema.Document{
		schema.ProductsKey: []any{
			map[string]any{"id": "p1", "name": "Dunk", "price": float64(120)},
		},
		"upcoming": []any{
			map[string]any{"id": "d1"},
			map[string]any{"id": "d2"},
		},
	}}
	guilds := newFakeGuilds()
	svc := NewSyncService(sync, guilds)

	res, err := svc.Resync(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Resync: %v", err)
	}
	if !sync.forced {
		t.Fatal("resync must bypass the cache")
	}
	if res.Products != 1 || res.Drops != 2 || res.DropsKey != "upcoming" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestResync_RefreshesSchemaProfile(t *testing.T) {
	sync := &fakeSync{doc: schema.Document{
		schema.ProductsKey: []any{
			map[string]any{"id": "p1", "name": "Dunk", "price": float64(120), "stock": "STABLE"},
		},
	}}
	guilds := newFakeGuilds()
	svc := NewSyncService(sync, guilds)

	if _, err := svc.Resync(context.Background(), "g1"); err != nil {
		t.Fatalf("Resync: %v", err)
	}

	row := guilds.rows["g1"]
	if row == nil || row.SchemaProfile == nil {
		t.Fatal("expected a stored schema profile")
	}
	var fields []schema.Field
	if err := json.Unmarshal([]byte(*row.SchemaProfile), &fields); err != nil {
		t.Fatalf("profile not JSON: %v", err)
	}
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %v", fields)
	}
}

func TestResync_EmptyCatalogSkipsProfile(t *testing.T) {
	sync := &fakeSync{doc: schema.Document{schema.ProductsKey: []any{}}}
	guilds := newFakeGuilds()
	svc := NewSyncService(sync, guilds)

	res, err := svc.Resync(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Resync: %v", err)
	}
	if res.Products != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if _, exists := guilds.rows["g1"]; exists {
		t.Fatal("no profile row expected for an empty catalog")
	}
}

func TestRepair_BackfillsNarrowRecords(t *testing.T) {
	sync := &fakeSync{doc: schema.Document{
		schema.ProductsKey: []any{
			map[string]any{"id": "p1", "name": "Old", "price": float64(120)},
			map[string]any{"id": "p2", "name": "Narrow"},
		},
		"drops": []any{
			map[string]any{"id": "d1", "status": "PENDING"},
		},
	}}
	svc := NewSyncService(sync, newFakeGuilds())

	res, err := svc.Repair(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if res.Repaired != 1 {
		t.Fatalf("expected 1 repaired record, got %d", res.Repaired)
	}
	if sync.updates != 1 {
		t.Fatalf("expected one write-back, got %d", sync.updates)
	}

	got := schema.Records(sync.doc, schema.ProductsKey)
	if got[1]["price"] != float64(0) {
		t.Fatalf("expected price backfilled on p2, got %v", got[1]["price"])
	}
}

func TestRepair_NoOpStillWritesBack(t *testing.T) {
	sync := &fakeSync{doc: schema.Document{
		schema.ProductsKey: []any{
			map[string]any{"id": "p1", "name": "A"},
			map[string]any{"id": "p2", "name": "B"},
		},
	}}
	svc := NewSyncService(sync, newFakeGuilds())

	res, err := svc.Repair(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Repair: %v", err)
	}
	if res.Repaired != 0 {
		t.Fatalf("expected nothing repaired, got %d", res.Repaired)
	}
	if sync.updates != 1 {
		t.Fatal("repair always persists the normalized document")
	}
}
