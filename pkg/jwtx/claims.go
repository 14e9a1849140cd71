package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens. Long enough
// to cover a working day without re-authentication.
const DefaultSessionTTL = 12 * time.Hour

// Claims are the session-token claims shared across the service. Keep
// changes additive to preserve compatibility for issued tokens.
type Claims struct {
	jwt.RegisteredClaims

	// SID is the server-side session row id, used for revocation checks.
	SID string `json:"sid,omitempty"`

	// Role the session was granted for ("employee" or "admin"). This is a
	// routing hint only; authorization re-reads the role store.
	Role string `json:"role,omitempty"`

	// Email of the authenticated account.
	Email string `json:"email,omitempty"`

	// DisplayName is the human-readable name for the user.
	DisplayName string `json:"display_name,omitempty"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(
	subject, sid, role, email, displayName string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        sid,
		},
		SID:         sid,
		Role:        role,
		Email:       email,
		DisplayName: displayName,
	}
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token has not expired (exp) and is not used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
