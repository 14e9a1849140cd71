package identity

import (
	"context"
	"errors"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
)

var (
	// ErrPolicy means the email or password fails the provider's
	// credential policy. The message carries the specific violation.
	ErrPolicy = errors.New("credential_policy")

	// ErrEmailTaken means an account already exists for the email.
	ErrEmailTaken = errors.New("email_taken")

	// ErrInvalidCredentials means the email/password pair does not match
	// any account. Deliberately indistinguishable between unknown email
	// and wrong password.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrSessionInvalid covers unparseable, expired, and revoked session
	// tokens.
	ErrSessionInvalid = errors.New("session_invalid")
)

// Account is the provider's view of one identity.
type Account struct {
	UserID      string
	Email       string
	DisplayName string
}

// Session is a granted authentication session. Token is the bearer value
// handed to the client; ID is the server-side row used for revocation.
type Session struct {
	ID        string
	Token     string
	UserID    string
	Role      domain.Role
	ExpiresAt time.Time
}

// Provider is the identity backend contract. The rest of the service talks
// to identities only through this interface, so a hosted provider could be
// swapped in behind it without touching the orchestration code.
type Provider interface {
	// CreateAccount registers a new identity. Returns ErrPolicy for a
	// malformed email or weak password, ErrEmailTaken for duplicates.
	CreateAccount(ctx context.Context, email, password, displayName string) (Account, error)

	// DeleteAccount removes an identity. Used to unwind a sign-up whose
	// follow-up writes failed.
	DeleteAccount(ctx context.Context, userID string) error

	// Authenticate verifies credentials and returns the matching account.
	Authenticate(ctx context.Context, email, password string) (Account, error)

	// GrantSession issues a session token for an authenticated account
	// under the given role.
	GrantSession(ctx context.Context, acct Account, role domain.Role) (Session, error)

	// CurrentSession validates a bearer token against both its signature
	// and the server-side session row. Returns ErrSessionInvalid when the
	// token is unparseable, expired, or revoked.
	CurrentSession(ctx context.Context, token string) (Session, Account, error)

	// InvalidateSession revokes the session behind the token. Idempotent:
	// unknown and already revoked tokens are a no-op success.
	InvalidateSession(ctx context.Context, token string) error
}
