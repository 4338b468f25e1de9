package sqlite

import (
	"context"
	"database/sql"

	"github.com/lanternhq/authd/internal/auth/domain"
	"github.com/lanternhq/authd/internal/auth/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, password_hash, session_id, reset_token, created_at, updated_at`

func (r *usersRepo) getBy(ctx context.Context, where string, arg any) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getBy(ctx, `id = ?`, id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, `email = ?`, email)
}

func (r *usersRepo) GetUserBySessionID(ctx context.Context, sessionID string) (domain.User, error) {
	return r.getBy(ctx, `session_id = ?`, sessionID)
}

func (r *usersRepo) GetUserByResetToken(ctx context.Context, resetToken string) (domain.User, error) {
	return r.getBy(ctx, `reset_token = ?`, resetToken)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, session_id, reset_token)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, mapStringNull(u.SessionID), mapStringNull(u.ResetToken),
	)
	return mapConflict(err)
}

func (r *usersRepo) UpdateSessionID(ctx context.Context, userID string, sessionID string) error {
	return r.update(ctx,
		`UPDATE users SET session_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		mapStringNull(sessionID), userID,
	)
}

func (r *usersRepo) UpdateResetToken(ctx context.Context, userID string, resetToken string) error {
	return r.update(ctx,
		`UPDATE users SET reset_token = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		mapStringNull(resetToken), userID,
	)
}

// UpdatePassword replaces the hash and clears any pending reset token in one
// statement, keeping the two writes atomic for concurrent readers.
func (r *usersRepo) UpdatePassword(ctx context.Context, userID string, newHash string) error {
	return r.update(ctx,
		`UPDATE users SET password_hash = ?, reset_token = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newHash, userID,
	)
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) update(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapConflict(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u          domain.User
		sessionID  sql.NullString
		resetToken sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &sessionID, &resetToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.SessionID = mapNullString(sessionID)
	u.ResetToken = mapNullString(resetToken)
	return u, nil
}
