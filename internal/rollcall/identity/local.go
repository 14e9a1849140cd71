package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
	"github.com/stratusworks/rollcall/pkg/cryptox"
	"github.com/stratusworks/rollcall/pkg/idx"
	"github.com/stratusworks/rollcall/pkg/jwtx"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the weakest password the provider accepts.
const MinPasswordLength = 6

var validate = validator.New()

// LocalProvider is the store-backed identity backend: argon2id password
// hashes, EdDSA session tokens, and a sessions table for revocation.
type LocalProvider struct {
	Store      store.Store
	KeyManager *jwtx.KeyManager
	Issuer     string
	SessionTTL time.Duration
}

func (p *LocalProvider) ttl() time.Duration {
	if p.SessionTTL > 0 {
		return p.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

// CreateAccount registers a new identity after checking the credential
// policy. The account id is a fresh ULID.
func (p *LocalProvider) CreateAccount(ctx context.Context, email, password, displayName string) (Account, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return Account{}, fmt.Errorf("%w: email address is badly formatted", ErrPolicy)
	}
	if len(password) < MinPasswordLength {
		return Account{}, fmt.Errorf("%w: password must be at least %d characters", ErrPolicy, MinPasswordLength)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return Account{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
	}

	if err := p.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Account{}, fmt.Errorf("%w: the email address is already in use by another account", ErrEmailTaken)
		}
		return Account{}, err
	}

	return Account{UserID: u.ID, Email: u.Email, DisplayName: u.DisplayName}, nil
}

// DeleteAccount removes the identity row. The role and session rows cascade.
func (p *LocalProvider) DeleteAccount(ctx context.Context, userID string) error {
	return p.Store.Users().DeleteUser(ctx, userID)
}

// Authenticate verifies the email/password pair. Unknown email and wrong
// password both come back as ErrInvalidCredentials.
func (p *LocalProvider) Authenticate(ctx context.Context, email, password string) (Account, error) {
	u, err := p.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	return Account{UserID: u.ID, Email: u.Email, DisplayName: u.DisplayName}, nil
}

// GrantSession signs a session token and records the backing session row.
func (p *LocalProvider) GrantSession(ctx context.Context, acct Account, role domain.Role) (Session, error) {
	now := time.Now().UTC()
	sid := idx.New().String()
	ttl := p.ttl()

	claims := jwtx.NewSessionClaims(
		acct.UserID,      // subject
		sid,              // session id
		string(role),     // granted role
		acct.Email,       // email
		acct.DisplayName, // display name
		ttl,
		p.Issuer,
		now,
	)

	token, err := p.KeyManager.Signer.Sign(claims)
	if err != nil {
		return Session{}, err
	}

	sess := domain.Session{
		ID:        sid,
		UserID:    acct.UserID,
		Role:      role,
		ExpiresAt: now.Add(ttl),
	}
	if err := p.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return Session{}, err
	}

	return Session{
		ID:        sid,
		Token:     token,
		UserID:    acct.UserID,
		Role:      role,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// CurrentSession checks the token signature, then the server-side row, so a
// signed-out token stops working before its exp.
func (p *LocalProvider) CurrentSession(ctx context.Context, token string) (Session, Account, error) {
	claims, err := p.KeyManager.Verifier.Verify(token)
	if err != nil {
		return Session{}, Account{}, ErrSessionInvalid
	}

	row, err := p.Store.Sessions().GetSession(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, Account{}, ErrSessionInvalid
		}
		return Session{}, Account{}, err
	}

	if row.Revoked || time.Now().After(row.ExpiresAt) {
		return Session{}, Account{}, ErrSessionInvalid
	}

	sess := Session{
		ID:        row.ID,
		Token:     token,
		UserID:    row.UserID,
		Role:      row.Role,
		ExpiresAt: row.ExpiresAt,
	}
	acct := Account{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}
	return sess, acct, nil
}

// InvalidateSession revokes the session row behind the token. Tokens that
// fail verification are treated as already signed out.
func (p *LocalProvider) InvalidateSession(ctx context.Context, token string) error {
	claims, err := p.KeyManager.Verifier.Verify(token)
	if err != nil {
		return nil
	}
	return p.Store.Sessions().RevokeSession(ctx, claims.SID)
}
