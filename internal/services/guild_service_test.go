package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dropforge/catalog-bot/internal/secrets"
)

func testKeeper(t *testing.T) *secrets.Keeper {
	t.Helper()
	k, err := secrets.NewKeeper(bytes.Repeat([]byte{0x42}, 32))
	if err != nil {
		t.Fatalf("NewKeeper: %v", err)
	}
	return k
}

func TestSetToken_SealsBeforeStoring(t *testing.T) {
	guilds := newFakeGuilds()
	keeper := testKeeper(t)
	svc := NewGuildService(guilds, keeper)

	if err := svc.SetToken(context.Background(), "g1", "ghp_secret"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	row := guilds.rows["g1"]
	if row == nil || row.GistTokenEncrypted == nil {
		t.Fatal("expected a stored token")
	}
	if *row.GistTokenEncrypted == "ghp_secret" {
		t.Fatal("token stored in plaintext")
	}
	plain, err := keeper.Open(*row.GistTokenEncrypted)
	if err != nil || plain != "ghp_secret" {
		t.Fatalf("round trip: %q, %v", plain, err)
	}
}

func TestSetToken_RejectsBlank(t *testing.T) {
	svc := NewGuildService(newFakeGuilds(), testKeeper(t))
	if err := svc.SetToken(context.Background(), "g1", "   "); !errors.Is(err, ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}

func TestSetGistID_RejectsBlank(t *testing.T) {
	svc := NewGuildService(newFakeGuilds(), testKeeper(t))
	if err := svc.SetGistID(context.Background(), "g1", ""); !errors.Is(err, ErrEmptyGistID) {
		t.Fatalf("expected ErrEmptyGistID, got %v", err)
	}
}

func TestSetWebhook_ValidatesURL(t *testing.T) {
	guilds := newFakeGuilds()
	svc := NewGuildService(guilds, testKeeper(t))

	for _, bad := range []string{"", "ftp://host/hook", "not-a-url", "https://"} {
		if err := svc.SetWebhook(context.Background(), "g1", bad); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("webhook %q: expected ErrInvalidURL, got %v", bad, err)
		}
	}

	if err := svc.SetWebhook(context.Background(), "g1", "https://hooks.example.com/x/"); err != nil {
		t.Fatalf("SetWebhook: %v", err)
	}
	if got := *guilds.rows["g1"].AnnounceWebhook; got != "https://hooks.example.com/x" {
		t.Fatalf("expected trailing slash trimmed, got %q", got)
	}
}

func TestStatus_UnknownGuildIsZero(t *testing.T) {
	svc := NewGuildService(newFakeGuilds(), testKeeper(t))

	st, err := svc.Status(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Configured || st.TokenSet || st.GistID != nil {
		t.Fatalf("expected zero status, got %+v", st)
	}
	if st.GuildID != "g1" {
		t.Fatalf("expected guild id echoed, got %q", st.GuildID)
	}
}

func TestStatus_NeverExposesToken(t *testing.T) {
	guilds := newFakeGuilds()
	svc := NewGuildService(guilds, testKeeper(t))

	if err := svc.SetToken(context.Background(), "g1", "ghp_secret"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if err := svc.SetGistID(context.Background(), "g1", "abc123"); err != nil {
		t.Fatalf("SetGistID: %v", err)
	}

	st, err := svc.Status(context.Background(), "g1")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.Configured || !st.TokenSet {
		t.Fatalf("expected configured status, got %+v", st)
	}
	if st.GistID == nil || *st.GistID != "abc123" {
		t.Fatalf("expected gist id, got %+v", st.GistID)
	}
}
