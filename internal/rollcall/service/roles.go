package service

import (
	"context"
	"fmt"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/prefs"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
)

// cachedRoleKey is the preference key holding the last signed-in role.
const cachedRoleKey = "user_role"

// RoleService owns role reads and writes. The database copy is
// authoritative; the prefs copy is a routing hint that speeds up the
// initial-route decision and is never consulted for authorization.
type RoleService struct {
	Store store.Store
	Prefs *prefs.Store
}

// SetRole overwrites the authoritative role for a user. Last write wins.
func (s *RoleService) SetRole(ctx context.Context, userID string, role domain.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrRemoteWrite, role)
	}
	if err := s.Store.UserRoles().SetRole(ctx, userID, role); err != nil {
		return fmt.Errorf("%w: saving role: %v", ErrRemoteWrite, err)
	}
	return nil
}

// GetRole reads the authoritative role. A user with no role row is a data
// integrity problem, not a mismatch, so it surfaces as a read failure.
func (s *RoleService) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	role, err := s.Store.UserRoles().GetRole(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: reading role: %v", ErrRemoteRead, err)
	}
	return role, nil
}

// CacheRole stores the role hint locally.
func (s *RoleService) CacheRole(role domain.Role) error {
	return s.Prefs.Set(cachedRoleKey, string(role))
}

// CachedRole returns the locally cached role hint, if a valid one exists.
func (s *RoleService) CachedRole() (domain.Role, bool) {
	raw, ok, err := s.Prefs.Get(cachedRoleKey)
	if err != nil || !ok {
		return "", false
	}
	role, err := domain.ParseRole(raw)
	if err != nil {
		return "", false
	}
	return role, true
}

// ClearCachedRole drops the local hint. Called on sign-out.
func (s *RoleService) ClearCachedRole() error {
	return s.Prefs.Delete(cachedRoleKey)
}
