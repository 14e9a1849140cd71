package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/identity"
	"github.com/stratusworks/rollcall/pkg/slogx"
)

var (
	ErrCredentialPolicy = errors.New("credential_policy")
	ErrAccountConflict  = errors.New("account_conflict")
	ErrAuthentication   = errors.New("authentication_failed")
	ErrRoleMismatch     = errors.New("role_mismatch")
	ErrUserUnavailable  = errors.New("user_unavailable")
	ErrRemoteWrite      = errors.New("remote_write_failed")
	ErrRemoteRead       = errors.New("remote_read_failed")
)

// AuthService orchestrates the sign-up and sign-in workflows across the
// identity provider and the role store. Failures surface verbatim with no
// retries.
type AuthService struct {
	Provider identity.Provider
	Roles    *RoleService
}

// SignInResult is a granted session plus the authoritative role it carries.
type SignInResult struct {
	Token     string
	UserID    string
	Role      domain.Role
	ExpiresAt time.Time
}

// SignUp creates an account and persists its role. Success is reported only
// after BOTH writes land. If the role write fails the freshly created
// account is deleted again, so no role-less account is left behind.
func (s *AuthService) SignUp(ctx context.Context, email, password, displayName string, role domain.Role) error {
	l := slogx.FromContext(ctx)

	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrCredentialPolicy, role)
	}

	acct, err := s.Provider.CreateAccount(ctx, email, password, displayName)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrPolicy):
			return fmt.Errorf("%w: %s", ErrCredentialPolicy, reason(err))
		case errors.Is(err, identity.ErrEmailTaken):
			return fmt.Errorf("%w: %s", ErrAccountConflict, reason(err))
		}
		return err
	}

	if err := s.Roles.SetRole(ctx, acct.UserID, role); err != nil {
		// Compensating delete: the account exists but its role does not,
		// and sign-up must not half-succeed.
		if delErr := s.Provider.DeleteAccount(ctx, acct.UserID); delErr != nil {
			l.Error("failed to unwind account after role write failure",
				slog.String("user_id", acct.UserID),
				slog.Any("error", delErr),
			)
		}
		return err
	}

	l.Info("account created",
		slog.String("user_id", acct.UserID),
		slog.String("role", role.String()),
	)
	return nil
}

// SignIn authenticates and grants a session, then compares the user's
// authoritative role with the portal they tried to enter. On a mismatch the
// just-granted session is revoked immediately; a mismatch never leaves a
// usable session behind.
func (s *AuthService) SignIn(ctx context.Context, email, password string, expectedRole domain.Role) (SignInResult, error) {
	l := slogx.FromContext(ctx)

	acct, err := s.Provider.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return SignInResult{}, ErrAuthentication
		}
		return SignInResult{}, err
	}
	if acct.UserID == "" {
		return SignInResult{}, ErrUserUnavailable
	}

	role, err := s.Roles.GetRole(ctx, acct.UserID)
	if err != nil {
		return SignInResult{}, err
	}

	sess, err := s.Provider.GrantSession(ctx, acct, role)
	if err != nil {
		return SignInResult{}, err
	}

	if role != expectedRole {
		if err := s.Provider.InvalidateSession(ctx, sess.Token); err != nil {
			l.Error("failed to revoke session after role mismatch",
				slog.String("user_id", acct.UserID),
				slog.Any("error", err),
			)
		}
		l.Info("sign-in role mismatch",
			slog.String("user_id", acct.UserID),
			slog.String("expected", expectedRole.String()),
			slog.String("actual", role.String()),
		)
		return SignInResult{}, fmt.Errorf("%w: account is registered as %s", ErrRoleMismatch, role)
	}

	// Cache the role hint for the initial-route decision. Best effort.
	if err := s.Roles.CacheRole(role); err != nil {
		l.Warn("failed to cache role hint", slog.Any("error", err))
	}

	return SignInResult{
		Token:     sess.Token,
		UserID:    acct.UserID,
		Role:      role,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// IsLoggedIn reports whether the token maps to a live session.
func (s *AuthService) IsLoggedIn(ctx context.Context, token string) bool {
	_, _, err := s.Provider.CurrentSession(ctx, token)
	return err == nil
}

// SignOut revokes the session and drops the local role hint. Idempotent:
// signing out an unknown or already revoked token succeeds.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if err := s.Provider.InvalidateSession(ctx, token); err != nil {
		return err
	}
	if err := s.Roles.ClearCachedRole(); err != nil {
		slogx.FromContext(ctx).Warn("failed to clear cached role", slog.Any("error", err))
	}
	return nil
}

// reason strips the leading "kind: " token from an error message so the
// human-readable part can be re-wrapped under a service-level kind.
func reason(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
