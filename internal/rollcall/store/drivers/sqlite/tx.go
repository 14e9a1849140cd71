package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stratusworks/rollcall/internal/rollcall/store"
)

// txStore is a Tx-scoped Store backed by an open *sql.Tx.
type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) store.Tx {
	return &txStore{tx: tx}
}

func (t *txStore) Users() store.Users               { return &usersRepo{q: t.tx} }
func (t *txStore) UserRoles() store.UserRoles       { return &userRolesRepo{q: t.tx} }
func (t *txStore) Attendance() store.Attendance     { return &attendanceRepo{q: t.tx} }
func (t *txStore) DailyRecords() store.DailyRecords { return &dailyRecordsRepo{q: t.tx} }
func (t *txStore) Sessions() store.Sessions         { return &sessionsRepo{q: t.tx} }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) ApplyMigrations() error {
	return errors.New("sqlite: cannot apply migrations inside a transaction")
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }
