package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/dropforge/catalog-bot/internal/domain"
)

func TestSetPermission_UpsertOverwritesLevel(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := SetPermission(ctx, db, "g1", domain.TargetUser, "u1", domain.PermissionAllowed, "owner"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := SetPermission(ctx, db, "g1", domain.TargetUser, "u1", domain.PermissionAdmin, "owner"); err != nil {
		t.Fatalf("re-set: %v", err)
	}

	perms, err := ListPermissions(ctx, db, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(perms) != 1 {
		t.Fatalf("expected single row after upsert, got %d", len(perms))
	}
	if perms[0].Level != domain.PermissionAdmin {
		t.Errorf("level = %q; want admin", perms[0].Level)
	}
}

func TestListPermissions_ScopedToGuild(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_ = SetPermission(ctx, db, "g1", domain.TargetUser, "u1", domain.PermissionAllowed, "owner")
	_ = SetPermission(ctx, db, "g1", domain.TargetRole, "r1", domain.PermissionAdmin, "owner")
	_ = SetPermission(ctx, db, "g2", domain.TargetUser, "u1", domain.PermissionAdmin, "owner")

	perms, err := ListPermissions(ctx, db, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(perms) != 2 {
		t.Fatalf("expected 2 grants for g1, got %d", len(perms))
	}
	for _, p := range perms {
		if p.GuildID != "g1" {
			t.Errorf("foreign guild row leaked: %+v", p)
		}
	}
}

func TestRemovePermission(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_ = SetPermission(ctx, db, "g1", domain.TargetUser, "u1", domain.PermissionAllowed, "owner")

	if err := RemovePermission(ctx, db, "g1", domain.TargetUser, "u1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := RemovePermission(ctx, db, "g1", domain.TargetUser, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove: expected ErrNotFound, got %v", err)
	}
}
