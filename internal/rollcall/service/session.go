package service

import (
	"context"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/identity"
)

// SessionService answers the one question a client asks on launch: where
// should this user land?
type SessionService struct {
	Provider identity.Provider
	Roles    *RoleService
}

// DetermineInitialRoute is a pure read. A live session routes to home with
// the best available role context (cached hint first, session role as the
// fallback); anything else routes to the dashboard. JustLoggedIn is always
// false here, only a completed sign-in sets it.
func (s *SessionService) DetermineInitialRoute(ctx context.Context, token string) domain.InitialRoute {
	sess, _, err := s.Provider.CurrentSession(ctx, token)
	if err != nil {
		return domain.InitialRoute{Name: domain.RouteDashboard}
	}

	role := sess.Role
	if hint, ok := s.Roles.CachedRole(); ok {
		role = hint
	}

	return domain.InitialRoute{
		Name:         domain.RouteHome,
		Role:         role,
		JustLoggedIn: false,
	}
}
