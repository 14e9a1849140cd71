package sqlite

import (
	"context"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
)

type userRolesRepo struct {
	q querier
}

const setRoleSQL = `
INSERT INTO user_roles (user_id, role)
VALUES (?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    role       = excluded.role,
    updated_at = CURRENT_TIMESTAMP;
`

// SetRole writes the authoritative role for a user. Last write wins.
func (r *userRolesRepo) SetRole(ctx context.Context, userID string, role domain.Role) error {
	_, err := r.q.ExecContext(ctx, setRoleSQL, userID, string(role))
	return err
}

const getRoleSQL = `
SELECT role FROM user_roles WHERE user_id = ?;
`

func (r *userRolesRepo) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	var raw string
	if err := r.q.QueryRowContext(ctx, getRoleSQL, userID).Scan(&raw); err != nil {
		return "", mapNotFound(err)
	}
	return domain.ParseRole(raw)
}
