// Package services - DropService
//
// CRUD over the drops collection. Unlike products the collection name is
// not fixed: documents in the wild keep upcoming items under several key
// names, so every operation locates the collection first via
// schema.DetectDropsKey and writes back under whatever name it found.
package services

import (
	"context"

	"github.com/dropforge/catalog-bot/internal/schema"
)

// defaultDropStatus is filled in when a new drop omits the status field.
const defaultDropStatus = "PENDING"

// DropService manages upcoming-drop records.
type DropService struct {
	Sync DocumentSync
}

// NewDropService constructs a DropService.
func NewDropService(sync DocumentSync) *DropService {
	return &DropService{Sync: sync}
}

// List returns one page of the drops collection, the total count, and the
// detected collection key.
func (s *DropService) List(ctx context.Context, guildID string, page, perPage int) ([]schema.Record, int64, string, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, 0, "", err
	}
	key := schema.DetectDropsKey(doc)
	records := schema.Records(doc, key)
	return paginateRecords(records, page, perPage), int64(len(records)), key, nil
}

// Get returns the drop with the given id, or ErrRecordNotFound.
func (s *DropService) Get(ctx context.Context, guildID, id string) (schema.Record, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	records := schema.Records(doc, schema.DetectDropsKey(doc))
	idx := findRecord(records, id)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}
	return records[idx], nil
}

// Create appends record to the drops collection, creating the collection
// under the key "drops" when the document has none. Status defaults to
// "PENDING" when absent.
func (s *DropService) Create(ctx context.Context, guildID string, record schema.Record) (schema.Record, error) {
	id := recordID(record)
	if id == "" {
		return nil, ErrMissingID
	}
	if _, ok := record["status"]; !ok {
		record["status"] = defaultDropStatus
	}

	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	key := schema.DetectDropsKey(doc)
	records := schema.Records(doc, key)
	merged := schema.MergeWithSchema(record, records)
	records = append(records, merged)
	schema.SetRecords(doc, key, records)

	if err := s.Sync.Update(ctx, guildID, doc); err != nil {
		return nil, err
	}
	return merged, nil
}

// Update overlays the provided fields onto the drop with the given id and
// writes the document back under the detected collection key.
func (s *DropService) Update(ctx context.Context, guildID, id string, changes schema.Record) (schema.Record, error) {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return nil, err
	}
	key := schema.DetectDropsKey(doc)
	records := schema.Records(doc, key)
	idx := findRecord(records, id)
	if idx < 0 {
		return nil, ErrRecordNotFound
	}

	updated := overlayRecord(records[idx], changes, id)
	records[idx] = schema.MergeWithSchema(updated, records)
	schema.SetRecords(doc, key, records)

	if err := s.Sync.Update(ctx, guildID, doc); err != nil {
		return nil, err
	}
	return records[idx], nil
}

// Delete removes the drop with the given id, or returns ErrRecordNotFound.
func (s *DropService) Delete(ctx context.Context, guildID, id string) error {
	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return err
	}
	key := schema.DetectDropsKey(doc)
	records := schema.Records(doc, key)
	idx := findRecord(records, id)
	if idx < 0 {
		return ErrRecordNotFound
	}
	records = append(records[:idx], records[idx+1:]...)
	schema.SetRecords(doc, key, records)
	return s.Sync.Update(ctx, guildID, doc)
}
