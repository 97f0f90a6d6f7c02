// Package services - GuildService
//
// This file implements the GuildService, which manages per-guild setup:
// sealing and storing the gist token, recording the gist ID and the
// announcement webhook, and reporting configuration status. All writes go
// through the partial-update upsert, so setup steps can run in any order
// without clobbering each other.
package services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/dropforge/catalog-bot/internal/domain"
	"github.com/dropforge/catalog-bot/internal/repo"
	"github.com/dropforge/catalog-bot/internal/secrets"
)

// GuildStore defines the repository contract required by GuildService.
type GuildStore interface {
	// GetGuildConfig returns the guild row or repo.ErrNotFound.
	GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error)

	// UpsertGuildConfig inserts/updates the row; nil arguments leave the
	// stored value untouched.
	UpsertGuildConfig(ctx context.Context, guildID string, tokenEncrypted, gistID, schemaProfile, announceWebhook *string) error
}

// GuildStatus is the secret-free projection of a guild's configuration
// returned to callers. The token itself never leaves the service.
type GuildStatus struct {
	GuildID       string  `json:"guild_id"`
	Configured    bool    `json:"configured"`
	TokenSet      bool    `json:"token_set"`
	GistID        *string `json:"gist_id,omitempty"`
	Webhook       *string `json:"announce_webhook,omitempty"`
	SchemaProfile *string `json:"schema_profile,omitempty"`
}

// GuildService manages guild configuration rows.
type GuildService struct {
	Store  GuildStore
	Keeper *secrets.Keeper
}

// NewGuildService constructs a GuildService.
func NewGuildService(store GuildStore, keeper *secrets.Keeper) *GuildService {
	return &GuildService{Store: store, Keeper: keeper}
}

// SetToken seals token and stores it for guildID. The plaintext is
// discarded immediately after sealing.
func (s *GuildService) SetToken(ctx context.Context, guildID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	sealed, err := s.Keeper.Seal(token)
	if err != nil {
		return err
	}
	return s.Store.UpsertGuildConfig(ctx, guildID, &sealed, nil, nil, nil)
}

// SetGistID records the remote document ID for guildID.
func (s *GuildService) SetGistID(ctx context.Context, guildID, gistID string) error {
	gistID = strings.TrimSpace(gistID)
	if gistID == "" {
		return ErrEmptyGistID
	}
	return s.Store.UpsertGuildConfig(ctx, guildID, nil, &gistID, nil, nil)
}

// SetWebhook records the announcement webhook URL for guildID.
func (s *GuildService) SetWebhook(ctx context.Context, guildID, webhook string) error {
	webhook = strings.TrimRight(strings.TrimSpace(webhook), "/")
	if !isHTTPURL(webhook) {
		return ErrInvalidURL
	}
	return s.Store.UpsertGuildConfig(ctx, guildID, nil, nil, nil, &webhook)
}

// Status reports the guild's configuration without secret material.
// An unknown guild yields a zero status rather than an error: "nothing
// configured yet" is a normal state during setup.
func (s *GuildService) Status(ctx context.Context, guildID string) (*GuildStatus, error) {
	cfg, err := s.Store.GetGuildConfig(ctx, guildID)
	if errors.Is(err, repo.ErrNotFound) {
		return &GuildStatus{GuildID: guildID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &GuildStatus{
		GuildID:       guildID,
		Configured:    cfg.Configured(),
		TokenSet:      cfg.GistTokenEncrypted != nil && *cfg.GistTokenEncrypted != "",
		GistID:        cfg.GistID,
		Webhook:       cfg.AnnounceWebhook,
		SchemaProfile: cfg.SchemaProfile,
	}, nil
}

// isHTTPURL reports whether raw parses as an absolute http(s) URL.
func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
