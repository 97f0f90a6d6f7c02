package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dropforge/catalog-bot/internal/schema"
)

func productDoc(records ...schema.Record) schema.Document {
	arr := make([]any, len(records))
	for i, r := range records {
		arr[i] = map[string]any(r)
	}
	return schema.Document{schema.ProductsKey: arr}
}

func TestCatalogCreate_DefaultsStockAndAppends(t *testing.T) {
	sync := &fakeSync{doc: productDoc()}
	svc := NewCatalogService(sync)

	created, err := svc.Create(context.Background(), "g1", schema.Record{"id": "p1", "name": "Dunk Low"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created["stock"] != "STABLE" {
		t.Fatalf("expected stock default, got %v", created["stock"])
	}
	if sync.updates != 1 {
		t.Fatalf("expected one write-back, got %d", sync.updates)
	}
	if got := schema.Records(sync.doc, schema.ProductsKey); len(got) != 1 || got[0]["id"] != "p1" {
		t.Fatalf("expected record persisted, got %v", got)
	}
}

func TestCatalogCreate_KeepsExplicitStock(t *testing.T) {
	svc := NewCatalogService(&fakeSync{doc: productDoc()})

	created, err := svc.Create(context.Background(), "g1", schema.Record{"id": "p1", "stock": "SOLD_OUT"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created["stock"] != "SOLD_OUT" {
		t.Fatalf("explicit stock overwritten: %v", created["stock"])
	}
}

func TestCatalogCreate_RequiresID(t *testing.T) {
	svc := NewCatalogService(&fakeSync{doc: productDoc()})

	if _, err := svc.Create(context.Background(), "g1", schema.Record{"name": "no id"}); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestCatalogCreate_ConformsToCollectionShape(t *testing.T) {
	existing := schema.Record{"id": "p0", "name": "Old", "price": float64(120), "stock": "STABLE"}
	svc := NewCatalogService(&fakeSync{doc: productDoc(existing)})

	created, err := svc.Create(context.Background(), "g1", schema.Record{"id": "p1", "name": "New"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created["price"] != float64(0) {
		t.Fatalf("expected numeric backfill, got %v", created["price"])
	}
}

func TestCatalogGet(t *testing.T) {
	svc := NewCatalogService(&fakeSync{doc: productDoc(schema.Record{"id": "p1", "name": "Dunk"})})

	rec, err := svc.Get(context.Background(), "g1", "p1")
	if err != nil || rec["name"] != "Dunk" {
		t.Fatalf("Get: %v, %v", rec, err)
	}
	if _, err := svc.Get(context.Background(), "g1", "nope"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestCatalogUpdate_OverlaysAndPinsID(t *testing.T) {
	sync := &fakeSync{doc: productDoc(schema.Record{"id": "p1", "name": "Dunk", "price": float64(120)})}
	svc := NewCatalogService(sync)

	updated, err := svc.Update(context.Background(), "g1", "p1", schema.Record{"price": float64(99), "id": "hijack"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated["price"] != float64(99) {
		t.Fatalf("price not updated: %v", updated["price"])
	}
	if updated["name"] != "Dunk" {
		t.Fatalf("untouched field lost: %v", updated["name"])
	}
	if updated["id"] != "p1" {
		t.Fatalf("id must be immutable, got %v", updated["id"])
	}
}

func TestCatalogUpdate_NotFound(t *testing.T) {
	sync := &fakeSync{doc: productDoc()}
	svc := NewCatalogService(sync)

	if _, err := svc.Update(context.Background(), "g1", "p1", schema.Record{}); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if sync.updates != 0 {
		t.Fatal("no write-back expected on lookup failure")
	}
}

func TestCatalogDelete(t *testing.T) {
	sync := &fakeSync{doc: productDoc(
		schema.Record{"id": "p1"},
		schema.Record{"id": "p2"},
	)}
	svc := NewCatalogService(sync)

	if err := svc.Delete(context.Background(), "g1", "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got := schema.Records(sync.doc, schema.ProductsKey)
	if len(got) != 1 || got[0]["id"] != "p2" {
		t.Fatalf("expected only p2 left, got %v", got)
	}
	if err := svc.Delete(context.Background(), "g1", "p1"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestCatalogList_Paginates(t *testing.T) {
	sync := &fakeSync{doc: productDoc(
		schema.Record{"id": "p1"},
		schema.Record{"id": "p2"},
		schema.Record{"id": "p3"},
	)}
	svc := NewCatalogService(sync)

	page, total, err := svc.List(context.Background(), "g1", 2, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(page) != 1 || page[0]["id"] != "p3" {
		t.Fatalf("expected page [p3], got %v", page)
	}

	page, _, _ = svc.List(context.Background(), "g1", 9, 2)
	if len(page) != 0 {
		t.Fatalf("expected empty out-of-range page, got %v", page)
	}
}

func TestCatalogSearch_RanksByName(t *testing.T) {
	sync := &fakeSync{doc: productDoc(
		schema.Record{"id": "p1", "name": "Air Max 90", "brand": "Nike"},
		schema.Record{"id": "p2", "name": "Samba", "brand": "Adidas"},
	)}
	svc := NewCatalogService(sync)

	results, err := svc.Search(context.Background(), "g1", "air max", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Record["id"] != "p1" {
		t.Fatalf("expected p1 only, got %v", results)
	}
}

func TestCatalog_FetchErrorPropagates(t *testing.T) {
	boom := errors.New("remote down")
	svc := NewCatalogService(&fakeSync{fetchErr: boom})

	if _, _, err := svc.List(context.Background(), "g1", 1, 10); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}
