package sqlite

import (
	"context"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
)

type usersRepo struct {
	q querier
}

const createUserSQL = `
INSERT INTO users (id, email, display_name, password_hash)
VALUES (?, ?, ?, ?);
`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, createUserSQL,
		u.ID, u.Email, u.DisplayName, u.PasswordHash,
	)
	return mapConflict(err)
}

const getUserByIDSQL = `
SELECT id, email, display_name, password_hash, created_at, updated_at
FROM users
WHERE id = ?;
`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, getUserByIDSQL, id).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const getUserByEmailSQL = `
SELECT id, email, display_name, password_hash, created_at, updated_at
FROM users
WHERE email = ?;
`

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.q.QueryRowContext(ctx, getUserByEmailSQL, email).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

const deleteUserSQL = `
DELETE FROM users WHERE id = ?;
`

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx, deleteUserSQL, userID)
	return err
}
