package store

import (
	"context"
	"errors"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	UserRoles() UserRoles
	Attendance() Attendance
	DailyRecords() DailyRecords
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during authentication.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes a user. Used for the compensating delete when the
	// role write after sign-up fails.
	DeleteUser(ctx context.Context, userID string) error
}

type UserRoles interface {
	// SetRole writes the authoritative role for a user id. Overwrite
	// semantics: last write wins, no merge.
	SetRole(ctx context.Context, userID string, role domain.Role) error

	// GetRole reads the authoritative role for a user id. Returns
	// ErrNotFound when no role has been assigned.
	GetRole(ctx context.Context, userID string) (domain.Role, error)
}

type Attendance interface {
	// UpsertRecord writes the attendance record at (date, user id),
	// replacing any prior record for that key wholesale.
	UpsertRecord(ctx context.Context, rec domain.AttendanceRecord) error

	// GetRecord reads one record by its natural key.
	GetRecord(ctx context.Context, date, userID string) (domain.AttendanceRecord, error)

	// ListDates returns the distinct dates with at least one record,
	// newest first. Used by reconciliation.
	ListDates(ctx context.Context) ([]string, error)

	// ListByDate returns all records for a date ordered by user id.
	ListByDate(ctx context.Context, date string) ([]domain.AttendanceRecord, error)
}

type DailyRecords interface {
	// UpsertRecord writes the reporting mirror at (date, user id).
	UpsertRecord(ctx context.Context, rec domain.DailyRecord) error

	// GetRecord reads one mirror row by its natural key.
	GetRecord(ctx context.Context, date, userID string) (domain.DailyRecord, error)

	// ListByDate returns all mirror rows for a date ordered by user id.
	ListByDate(ctx context.Context, date string) ([]domain.DailyRecord, error)

	// MissingForDate returns user ids that have an attendance record for the
	// date but no mirror row. Feeds the reconciliation housekeeping.
	MissingForDate(ctx context.Context, date string) ([]string, error)
}

type Sessions interface {
	// CreateSession stores a new session row.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns the session row by id.
	GetSession(ctx context.Context, id string) (domain.Session, error)

	// RevokeSession flips revoked=1. Revoking an already revoked or unknown
	// session is not an error; sign-out must be idempotent.
	RevokeSession(ctx context.Context, id string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}
