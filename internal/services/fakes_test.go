package services

import (
	"context"
	"encoding/json"

	"github.com/dropforge/catalog-bot/internal/domain"
	"github.com/dropforge/catalog-bot/internal/repo"
	"github.com/dropforge/catalog-bot/internal/schema"
)

// fakeSync is an in-memory DocumentSync. The document is deep-copied on
// Fetch so tests can assert that nothing leaks back without an Update.
type fakeSync struct {
	doc       schema.Document
	fetchErr  error
	updateErr error

	fetches int
	updates int
	forced  bool
}

func (f *fakeSync) Fetch(_ context.Context, _ string, force bool) (schema.Document, error) {
	f.fetches++
	if force {
		f.forced = true
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return deepCopy(f.doc), nil
}

func (f *fakeSync) Update(_ context.Context, _ string, doc schema.Document) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.doc = doc
	return nil
}

func deepCopy(doc schema.Document) schema.Document {
	b, _ := json.Marshal(doc)
	var out schema.Document
	_ = json.Unmarshal(b, &out)
	return out
}

// fakeGuilds is an in-memory GuildStore with COALESCE upsert semantics.
type fakeGuilds struct {
	rows map[string]*domain.GuildConfig
}

func newFakeGuilds() *fakeGuilds {
	return &fakeGuilds{rows: make(map[string]*domain.GuildConfig)}
}

func (f *fakeGuilds) GetGuildConfig(_ context.Context, guildID string) (*domain.GuildConfig, error) {
	row, ok := f.rows[guildID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return row, nil
}

func (f *fakeGuilds) UpsertGuildConfig(_ context.Context, guildID string, token, gistID, profile, webhook *string) error {
	row, ok := f.rows[guildID]
	if !ok {
		row = &domain.GuildConfig{GuildID: guildID}
		f.rows[guildID] = row
	}
	if token != nil {
		row.GistTokenEncrypted = token
	}
	if gistID != nil {
		row.GistID = gistID
	}
	if profile != nil {
		row.SchemaProfile = profile
	}
	if webhook != nil {
		row.AnnounceWebhook = webhook
	}
	return nil
}

// fakePerms is an in-memory PermissionStore.
type fakePerms struct {
	grants  []domain.Permission
	listErr error
}

func (f *fakePerms) ListPermissions(_ context.Context, guildID string) ([]domain.Permission, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Permission
	for _, p := range f.grants {
		if p.GuildID == guildID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePerms) SetPermission(_ context.Context, guildID, targetType, targetID, level, grantedBy string) error {
	for i, p := range f.grants {
		if p.GuildID == guildID && p.TargetType == targetType && p.TargetID == targetID {
			f.grants[i].Level = level
			f.grants[i].GrantedBy = grantedBy
			return nil
		}
	}
	f.grants = append(f.grants, domain.Permission{
		GuildID:    guildID,
		TargetType: targetType,
		TargetID:   targetID,
		Level:      level,
		GrantedBy:  grantedBy,
	})
	return nil
}

func (f *fakePerms) RemovePermission(_ context.Context, guildID, targetType, targetID string) error {
	for i, p := range f.grants {
		if p.GuildID == guildID && p.TargetType == targetType && p.TargetID == targetID {
			f.grants = append(f.grants[:i], f.grants[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func strptr(s string) *string { return &s }
