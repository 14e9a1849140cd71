package domain

import "time"

// Session is a server-side session row backing an issued session token.
// The token itself is a signed JWT carrying the session id; the row exists
// so sign-out can revoke a token before it expires.
type Session struct {
	ID        string
	UserID    string
	Role      Role
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
