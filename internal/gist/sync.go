// Remote document synchronization.
//
// Service orchestrates cache-then-network reads and read-modify-write
// updates of the per-guild catalog document. The remote store is
// authoritative; the durable cache is a read-through, time-bounded copy
// that is overwritten on every successful fetch or write (write-through)
// and never left stale after a write.
package gist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dropforge/catalog-bot/internal/domain"
	"github.com/dropforge/catalog-bot/internal/schema"
	"github.com/dropforge/catalog-bot/internal/secrets"
)

// DefaultTTL is the document cache staleness window.
const DefaultTTL = 5 * time.Minute

// ConfigStore is the credential-store contract consumed by the sync layer.
type ConfigStore interface {
	// GetGuildConfig returns the guild row or repo.ErrNotFound.
	GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error)
}

// CacheStore is the document-cache contract consumed by the sync layer.
// Implementations persist entries durably; TTL comparison happens here.
type CacheStore interface {
	// Get returns the cached snapshot or repo.ErrNotFound.
	Get(ctx context.Context, guildID string) (*domain.CacheEntry, error)
	// Put upserts the snapshot, resetting the fetch timestamp to now.
	Put(ctx context.Context, guildID, data string) error
}

// Service reads and mutates the remote catalog document per guild.
//
// Consistency contract: updates are last-writer-wins with no optimistic
// concurrency token. Two concurrent read-modify-write sequences against the
// same guild can interleave and silently lose one caller's edit; there is
// no per-guild lock or version check. This is an accepted, documented
// weakness of the deployment, not an oversight (the remote API offers no
// concurrency token either, and a local lock would not help across
// replicas).
//
// No retries are performed on transient failures; a failed fetch or update
// surfaces immediately to the caller.
type Service struct {
	Configs ConfigStore
	Cache   CacheStore
	Keeper  *secrets.Keeper
	Client  *Client

	// TTL bounds cache staleness; zero means DefaultTTL.
	TTL time.Duration

	// now is a test seam.
	now func() time.Time
}

// NewService constructs a Service with the default TTL.
func NewService(configs ConfigStore, cache CacheStore, keeper *secrets.Keeper, client *Client) *Service {
	return &Service{
		Configs: configs,
		Cache:   cache,
		Keeper:  keeper,
		Client:  client,
		TTL:     DefaultTTL,
		now:     time.Now,
	}
}

func (s *Service) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultTTL
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// credentials resolves and decrypts the guild's gist credentials, or
// returns ErrNotConfigured when either the token or the gist ID is missing.
func (s *Service) credentials(ctx context.Context, guildID string) (token, gistID string, err error) {
	cfg, err := s.Configs.GetGuildConfig(ctx, guildID)
	if err != nil || !cfg.Configured() {
		return "", "", ErrNotConfigured
	}
	token, err = s.Keeper.Open(*cfg.GistTokenEncrypted)
	if err != nil {
		return "", "", fmt.Errorf("decrypt gist token: %w", err)
	}
	return token, *cfg.GistID, nil
}

// Fetch returns the guild's document. Unless force is set, a cache entry
// younger than the TTL is served without any network access. On a cache
// miss (or forced refresh) the document is fetched from the remote,
// parsed, written through to the cache, and returned.
//
// Errors: ErrNotConfigured, ErrInvalidDocument, *RemoteError (OpRead).
func (s *Service) Fetch(ctx context.Context, guildID string, force bool) (schema.Document, error) {
	if !force {
		if entry, err := s.Cache.Get(ctx, guildID); err == nil {
			age := s.clock().Unix() - entry.FetchedAt
			if age < int64(s.ttl().Seconds()) {
				var doc schema.Document
				if jsonErr := json.Unmarshal([]byte(entry.Data), &doc); jsonErr == nil {
					return doc, nil
				}
				// Unreadable cache rows fall through to the network.
			}
		}
	}

	token, gistID, err := s.credentials(ctx, guildID)
	if err != nil {
		return nil, err
	}

	manifest, status, err := s.Client.Read(ctx, token, gistID)
	if err != nil {
		return nil, fmt.Errorf("gist read: %w", err)
	}
	if status < 200 || status >= 300 {
		return nil, &RemoteError{Op: OpRead, Status: status}
	}

	name, ok := manifest.FirstFile()
	if !ok || manifest.Files[name].Content == "" {
		return nil, ErrInvalidDocument
	}
	content := manifest.Files[name].Content

	var doc schema.Document
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	// Best-effort: a failed cache write must not fail the read.
	_ = s.Cache.Put(ctx, guildID, content)

	return doc, nil
}

// Update writes doc back to the guild's remote document. The file manifest
// is read first to discover the writable filename (the document may live
// under any name; it is never hard-coded), then that file's content is
// replaced with the pretty-printed document. On success the cache is
// written through with the new value.
//
// Errors: ErrNotConfigured, ErrInvalidDocument (empty manifest),
// *RemoteError (OpWrite) when either the manifest read or the write call
// returns a non-success status.
func (s *Service) Update(ctx context.Context, guildID string, doc schema.Document) error {
	token, gistID, err := s.credentials(ctx, guildID)
	if err != nil {
		return err
	}

	manifest, status, err := s.Client.Read(ctx, token, gistID)
	if err != nil {
		return fmt.Errorf("gist manifest read: %w", err)
	}
	if status < 200 || status >= 300 {
		return &RemoteError{Op: OpWrite, Status: status}
	}
	filename, ok := manifest.FirstFile()
	if !ok {
		return ErrInvalidDocument
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}

	status, err = s.Client.Write(ctx, token, gistID, filename, string(content))
	if err != nil {
		return fmt.Errorf("gist write: %w", err)
	}
	if status < 200 || status >= 300 {
		return &RemoteError{Op: OpWrite, Status: status}
	}

	_ = s.Cache.Put(ctx, guildID, string(content))

	return nil
}
