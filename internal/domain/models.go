// Package domain defines the persistence models for guild configuration,
// permission grants, and the remote-document cache. These types are mapped
// with GORM and form the core data layer of the catalog bot backend.
package domain

import "time"

// GuildConfig holds the per-guild (tenant) configuration row. A guild is
// considered configured once it has both an encrypted gist token and a gist
// ID; every other field is optional.
//
// Fields:
//   - GuildID: stable guild snowflake, primary key.
//   - GistTokenEncrypted: bearer token for the gist API, sealed with
//     AES-256-GCM (see internal/secrets). Nil until /setup/token ran.
//   - GistID: identifier of the remote gist holding the catalog document.
//   - SchemaProfile: advisory JSON snapshot of the inferred record schema,
//     refreshed on /sync. Never consulted for merge decisions.
//   - AnnounceWebhook: webhook URL announcements are posted to.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// Nullable columns use pointers so that partial upserts can distinguish
// "not provided" (nil, keep stored value) from an explicit value.
type GuildConfig struct {
	GuildID            string    `json:"guild_id"             gorm:"type:varchar(32);primaryKey"`
	GistTokenEncrypted *string   `json:"-"                    gorm:"type:text"`
	GistID             *string   `json:"gist_id,omitempty"    gorm:"type:varchar(64)"`
	SchemaProfile      *string   `json:"schema_profile,omitempty" gorm:"type:text"`
	AnnounceWebhook    *string   `json:"announce_webhook,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName returns the database table name for GuildConfig.
func (GuildConfig) TableName() string { return "guild_configs" }

// Configured reports whether both credentials required for remote document
// access are present.
func (g *GuildConfig) Configured() bool {
	return g != nil && g.GistTokenEncrypted != nil && *g.GistTokenEncrypted != "" &&
		g.GistID != nil && *g.GistID != ""
}

// Permission levels accepted in Permission.Level.
const (
	PermissionAdmin   = "admin"
	PermissionAllowed = "allowed"
)

// Permission target types accepted in Permission.TargetType.
const (
	TargetUser = "user"
	TargetRole = "role"
)

// Permission grants a user or role a capability level within one guild.
// At most one row exists per (guild, target type, target id); re-granting
// overwrites the level (idempotent upsert).
type Permission struct {
	ID         uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	GuildID    string    `json:"guild_id"    gorm:"type:varchar(32);not null;index:idx_perm_guild;uniqueIndex:ux_perm_target,priority:1"`
	TargetType string    `json:"target_type" gorm:"type:varchar(8);not null;check:target_type IN ('user','role');uniqueIndex:ux_perm_target,priority:2"`
	TargetID   string    `json:"target_id"   gorm:"type:varchar(32);not null;uniqueIndex:ux_perm_target,priority:3"`
	Level      string    `json:"level"       gorm:"type:varchar(8);not null;check:level IN ('admin','allowed')"`
	GrantedBy  string    `json:"granted_by"  gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time `json:"granted_at"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName returns the database table name for Permission.
func (Permission) TableName() string { return "permissions" }

// CacheEntry is the durable, per-guild snapshot of the last fetched remote
// document. FetchedAt is stored as unix seconds; staleness is decided by the
// sync layer at read time (entries are never proactively evicted), so a
// process restart does not lose the cache.
type CacheEntry struct {
	GuildID   string `json:"guild_id"   gorm:"type:varchar(32);primaryKey"`
	Data      string `json:"data"       gorm:"type:text;not null"`
	FetchedAt int64  `json:"fetched_at" gorm:"not null"`
}

// TableName returns the database table name for CacheEntry.
func (CacheEntry) TableName() string { return "document_cache" }
