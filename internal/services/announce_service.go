// Package services - AnnounceService
//
// Renders a catalog record as an embed-style payload and posts it to the
// guild's configured webhook. The payload shape mirrors what chat gateways
// accept: a title, an optional description, and short inline fields for the
// well-known display attributes.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/dropforge/catalog-bot/internal/repo"
	"github.com/dropforge/catalog-bot/internal/schema"
)

// Announceable record types.
const (
	TypeProduct = "product"
	TypeDrop    = "drop"
)

// embedField is one short attribute rendered inside the embed.
type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// embed is the rendered announcement body.
type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

// AnnounceService posts record announcements to guild webhooks.
type AnnounceService struct {
	Sync   DocumentSync
	Guilds GuildStore
	HTTP   *resty.Client
}

// NewAnnounceService constructs an AnnounceService around an outbound HTTP
// client.
func NewAnnounceService(sync DocumentSync, guilds GuildStore, client *resty.Client) *AnnounceService {
	return &AnnounceService{Sync: sync, Guilds: guilds, HTTP: client}
}

// Announce looks up the record of the given type and id and posts its
// rendering to the guild's webhook.
//
// Errors: ErrInvalidType, ErrNoWebhook, ErrRecordNotFound, plus whatever
// the document fetch or the webhook POST surface.
func (s *AnnounceService) Announce(ctx context.Context, guildID, recType, id string) error {
	if recType != TypeProduct && recType != TypeDrop {
		return ErrInvalidType
	}

	cfg, err := s.Guilds.GetGuildConfig(ctx, guildID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNoWebhook
	}
	if err != nil {
		return err
	}
	if cfg.AnnounceWebhook == nil || *cfg.AnnounceWebhook == "" {
		return ErrNoWebhook
	}

	doc, err := s.Sync.Fetch(ctx, guildID, false)
	if err != nil {
		return err
	}
	key := schema.ProductsKey
	if recType == TypeDrop {
		key = schema.DetectDropsKey(doc)
	}
	records := schema.Records(doc, key)
	idx := findRecord(records, id)
	if idx < 0 {
		return ErrRecordNotFound
	}

	payload := map[string]any{"embeds": []embed{renderEmbed(records[idx], recType)}}
	resp, err := s.HTTP.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(*cfg.AnnounceWebhook)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook post: status %d", resp.StatusCode())
	}
	return nil
}

// embedAttrs lists the record fields rendered as inline embed fields, with
// the label each one carries. Order is fixed for stable output.
var embedAttrs = []struct{ key, label string }{
	{"brand", "Brand"},
	{"price", "Price"},
	{"category", "Category"},
	{"stock", "Stock"},
	{"status", "Status"},
	{"date", "Date"},
}

// renderEmbed builds the embed body from a record. The title prefers name
// over title over id; description comes from the description field when
// present.
func renderEmbed(rec schema.Record, recType string) embed {
	title := fieldString(rec, "name")
	if title == "" {
		title = fieldString(rec, "title")
	}
	if title == "" {
		title = fieldString(rec, "id")
	}
	if recType == TypeDrop {
		title = "Upcoming: " + title
	}

	e := embed{
		Title:       title,
		Description: fieldString(rec, "description"),
	}
	for _, attr := range embedAttrs {
		if v := fieldString(rec, attr.key); v != "" {
			e.Fields = append(e.Fields, embedField{Name: attr.label, Value: v, Inline: true})
		}
	}
	return e
}

// fieldString renders a record value for display. Numbers drop their
// float64 decoding artifacts where possible; nil and empty values yield "".
func fieldString(rec schema.Record, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}
