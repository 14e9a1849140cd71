package domain

import "time"

// User is an account held by the identity provider.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleAssignment binds a user id to its authoritative role. Written once at
// sign-up, read at every sign-in, overwritten (never merged) on change.
type RoleAssignment struct {
	UserID    string
	Role      Role
	UpdatedAt time.Time
}
