package sqlite

import (
	"context"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
)

type sessionsRepo struct {
	q querier
}

const createSessionSQL = `
INSERT INTO sessions (id, user_id, role, expires_at)
VALUES (?, ?, ?, ?);
`

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.ExecContext(ctx, createSessionSQL,
		s.ID, s.UserID, string(s.Role), s.ExpiresAt,
	)
	return mapConflict(err)
}

const getSessionSQL = `
SELECT id, user_id, role, expires_at, revoked, created_at, updated_at
FROM sessions
WHERE id = ?;
`

func (r *sessionsRepo) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var (
		s   domain.Session
		raw string
	)
	err := r.q.QueryRowContext(ctx, getSessionSQL, id).Scan(
		&s.ID, &s.UserID, &raw, &s.ExpiresAt, &s.Revoked,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.Role = domain.Role(raw)
	return s, nil
}

const revokeSessionSQL = `
UPDATE sessions
SET revoked = 1, updated_at = CURRENT_TIMESTAMP
WHERE id = ?;
`

// RevokeSession is idempotent. Unknown or already revoked ids are a no-op.
func (r *sessionsRepo) RevokeSession(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, revokeSessionSQL, id)
	return err
}

const deleteExpiredSessionsSQL = `
DELETE FROM sessions WHERE datetime(expires_at) < datetime('now');
`

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx, deleteExpiredSessionsSQL)
	return err
}
