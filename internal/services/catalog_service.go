// Package services - CatalogService
//
// CRUD over the products collection of a guild's remote document. Every
// mutation is a read-modify-write against the synchronized document: fetch,
// edit the in-memory collection, normalize the touched record, write back.
package services

import (
	"context"
	"strings"

	"github.com/dropforge/catalog-bot/internal/schema"
	"github.com/dropforge/catalog-bot/internal/search"
)

// DocumentSync is the remote-document contract consumed by the record
// services. Satisfied by *gist.Service.
type DocumentSync interface {
	// Fetch returns the guild's document, honoring the cache unless force
	// is set.
	Fetch(ctx context.Context, guildID string, force bool) (schema.Document, error)
	// Update writes doc back to the remote and refreshes the cache.
	Update(ctx context.Context, guildID string, doc schema.Document) error
}

// defaultProductStock is filled in when a new product omits the stock field.
const defaultProductStock = "STABLE"

// CatalogService manages product records.
type CatalogService struct {
	Sync DocumentSync
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(sync DocumentSync) *CatalogService {
	return &CatalogService{Sync: sync}
}

// List returns one page of the products collection plus the total count.
// Page numbering starts at 1; out-of-range pages yield an empty slice.
func (s *CatalogService) List(ctx context.Context, guildID string, page, perPage int) ([]schema.Record, int64, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, 0, err
	}
	records := schema.Records(doc, schema.ProductsKey)
	return paginateRecords(records, page, perPage), int64(len(records)), nil
}

// Get returns the product with the given id, or ErrRecordNotFound.
func (s *CatalogService) Get(ctx context.Context, guildID, id string) (schema.Record, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	records := schema.Records(doc, schema.ProductsKey)
	idx := findRecord(records, id)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	return records[idx], nil
}

// Create appends record to the products collection. The record must carry a
// non-empty id; stock defaults to "STABLE" when absent. The new record is
// conformed to the collection's union schema before the write, and the
// normalized record is returned.
func (s *CatalogService) Create(ctx context.Context, guildID string, record schema.Record) (schema.Record, error) {
	id := recordID(record)
	if id == "" {
		return nil, ErrMissingID
	}
	if _, ok := record["stock"]; !ok {
		record["stock"] = defaultProductStock
	}

	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	records := schema.Records(doc, schema.ProductsKey)
	merged := schema.MergeWithSchema(record, records)
	records = append(records, merged)
	schema.SetRecords(doc, schema.ProductsKey, records)

	if err := s.Sync.Update(ctx, guildID, doc); err != nil {
		return nil, err
	}
	return merged, nil
}

// Update overlays the provided fields onto the product with the given id
// and writes the document back. Fields absent from changes keep their
// stored value; the id field itself cannot be changed.
func (s *CatalogService) Update(ctx context.Context, guildID, id string, changes schema.Record) (schema.Record, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	records := schema.Records(doc, schema.ProductsKey)
	idx := findRecord(records, id)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}

	updated := overlayRecord(records[idx], changes, id)
	records[idx] = schema.MergeWithSchema(updated, records)
	schema.SetRecords(doc, schema.ProductsKey, records)

	if err := s.Sync.Update(ctx, guildID, doc); err != nil {
		return nil, err
	}
	return records[idx], nil
}

// Delete removes the product with the given id, or returns
// ErrRecordNotFound.
func (s *CatalogService) Delete(ctx context.Context, guildID, id string) error {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return err
	}
	records := schema.Records(doc, schema.ProductsKey)
	idx := findRecord(records, id)
	if idx < 0 {
		return ErrRecordNotFound
	}
	records = append(records[:idx], records[idx+1:]...)
	schema.SetRecords(doc, schema.ProductsKey, records)
	return s.Sync.Update(ctx, guildID, doc)
}

// Search ranks products against the query for autocomplete. The index is
// rebuilt per call from the (usually cached) collection; catalogs are small
// enough that indexing cost is dominated by the fetch.
func (s *CatalogService) Search(ctx context.Context, guildID, query string, limit int) ([]search.Result, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	idx := search.NewIndex(schema.Records(doc, schema.ProductsKey))
	return idx.TopK(query, limit), nil
}

// recordID extracts the id field of a record as a trimmed string.
func recordID(rec schema.Record) string {
	s, _ := rec["id"].(string)
	return strings.TrimSpace(s)
}

// findRecord returns the index of the record whose id matches, or -1.
func findRecord(records []schema.Record, id string) int {
	for i, rec := range records {
		if recordID(rec) == id {
			return i
		}
	}
	return -1
}

// overlayRecord copies base and applies changes on top, pinning the id.
func overlayRecord(base, changes schema.Record, id string) schema.Record {
	out := make(schema.Record, len(base)+len(changes))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range changes {
		out[k] = v
	}
	out["id"] = id
	return out
}

// paginateRecords slices records for a 1-based page of size perPage.
func paginateRecords(records []schema.Record, page, perPage int) []schema.Record {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	start := (page - 1) * perPage
	if start >= len(records) {
		return []schema.Record{}
	}
	end := start + perPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
