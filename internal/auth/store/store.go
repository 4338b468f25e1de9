package store

import (
	"context"
	"errors"

	"github.com/lanternhq/authd/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. The service layer only ever sees these contracts, so tests
// can swap a real driver for an in-memory database.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back when fn errors,
	// committed otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users provides keyed lookup and update over user records. Each lookup
// returns ErrNotFound on a miss; callers decide whether absence is an error.
// Every update applies its full field set in a single statement, so a
// concurrent reader never observes a partial write.
type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail returns a user by its (lowercased) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserBySessionID resolves an active session id to its owner.
	GetUserBySessionID(ctx context.Context, sessionID string) (domain.User, error)

	// GetUserByResetToken resolves a pending reset token to its owner.
	GetUserByResetToken(ctx context.Context, resetToken string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateSessionID sets the session id, or clears it when sessionID is
	// empty, and bumps updated_at.
	UpdateSessionID(ctx context.Context, userID string, sessionID string) error

	// UpdateResetToken sets the pending reset token, replacing any prior
	// one, or clears it when resetToken is empty.
	UpdateResetToken(ctx context.Context, userID string, resetToken string) error

	// UpdatePassword sets the password hash and clears the reset token in
	// the same statement, so a consumed token can never linger next to the
	// new credential.
	UpdatePassword(ctx context.Context, userID string, newHash string) error

	// CountUsers returns the total number of records.
	CountUsers(ctx context.Context) (int64, error)
}
