// Package services - AccessService
//
// Permission checks for command callers. Grants live per guild and target
// either a user or a role; the bot owner bypasses every check. A user-level
// grant beats role grants, and admin implies allowed.
package services

import (
	"context"

	"github.com/dropforge/catalog-bot/internal/domain"
)

// PermissionStore defines the repository contract required by AccessService.
type PermissionStore interface {
	ListPermissions(ctx context.Context, guildID string) ([]domain.Permission, error)
	SetPermission(ctx context.Context, guildID, targetType, targetID, level, grantedBy string) error
	RemovePermission(ctx context.Context, guildID, targetType, targetID string) error
}

// AccessService answers "may this caller do that" questions and manages
// grants.
type AccessService struct {
	Store   PermissionStore
	OwnerID string
}

// NewAccessService constructs an AccessService.
func NewAccessService(store PermissionStore, ownerID string) *AccessService {
	return &AccessService{Store: store, OwnerID: ownerID}
}

// IsOwner reports whether userID is the bot owner.
func (s *AccessService) IsOwner(userID string) bool {
	return s.OwnerID != "" && userID == s.OwnerID
}

// HasLevel reports whether the caller holds at least the required level in
// guildID, considering the owner bypass, a direct user grant, and grants on
// any of the caller's roles.
func (s *AccessService) HasLevel(ctx context.Context, guildID, userID string, roleIDs []string, required string) (bool, error) {
	if s.IsOwner(userID) {
		return true, nil
	}

	perms, err := s.Store.ListPermissions(ctx, guildID)
	if err != nil {
		return false, err
	}

	satisfies := func(level string) bool {
		if required == domain.PermissionAllowed {
			return true // admin or allowed both satisfy "allowed"
		}
		return level == domain.PermissionAdmin
	}

	for _, p := range perms {
		if p.TargetType == domain.TargetUser && p.TargetID == userID && satisfies(p.Level) {
			return true, nil
		}
	}
	for _, roleID := range roleIDs {
		for _, p := range perms {
			if p.TargetType == domain.TargetRole && p.TargetID == roleID && satisfies(p.Level) {
				return true, nil
			}
		}
	}
	return false, nil
}

// List returns every grant in guildID.
func (s *AccessService) List(ctx context.Context, guildID string) ([]domain.Permission, error) {
	return s.Store.ListPermissions(ctx, guildID)
}

// Grant stores (or overwrites) a grant after validating the target type and
// level. Whether the caller is allowed to grant admin is the handler's
// concern; this method only enforces value sanity.
func (s *AccessService) Grant(ctx context.Context, guildID, targetType, targetID, level, grantedBy string) error {
	if targetType != domain.TargetUser && targetType != domain.TargetRole {
		return ErrInvalidTarget
	}
	if level != domain.PermissionAdmin && level != domain.PermissionAllowed {
		return ErrInvalidLevel
	}
	return s.Store.SetPermission(ctx, guildID, targetType, targetID, level, grantedBy)
}

// Revoke removes a grant; repo.ErrNotFound propagates when none exists.
func (s *AccessService) Revoke(ctx context.Context, guildID, targetType, targetID string) error {
	if targetType != domain.TargetUser && targetType != domain.TargetRole {
		return ErrInvalidTarget
	}
	return s.Store.RemovePermission(ctx, guildID, targetType, targetID)
}
