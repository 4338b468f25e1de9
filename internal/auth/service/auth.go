package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lanternhq/authd/internal/auth/domain"
	"github.com/lanternhq/authd/internal/auth/store"
	"github.com/lanternhq/authd/pkg/cryptox"
	"github.com/lanternhq/authd/pkg/idx"
	"github.com/lanternhq/authd/pkg/slogx"
)

var (
	// ErrUserExists reports a registration attempt for a taken email.
	ErrUserExists = errors.New("auth: user already exists")
	// ErrUserNotFound reports a lookup miss where absence is abnormal,
	// e.g. requesting a reset token for an unknown email.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrInvalidResetToken reports a reset-token consumption miss.
	ErrInvalidResetToken = errors.New("auth: invalid reset token")
)

// PasswordHasher is the credential-hashing collaborator. Hash must salt each
// call independently; Verify returns nil on match and cryptox.ErrMismatch on
// a clean mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// phcHasher adapts pkg/cryptox to PasswordHasher.
type phcHasher struct{}

func (phcHasher) Hash(password string) (string, error) { return cryptox.HashPassword(password) }

func (phcHasher) Verify(password, encodedHash string) error {
	return cryptox.VerifyPassword(password, encodedHash)
}

// AuthService orchestrates registration, login, session lifecycle and
// password reset over an injected record store and hasher. Session ids and
// reset tokens are opaque uuid4 strings; record ids are ULIDs.
type AuthService struct {
	Store  store.Store
	Hasher PasswordHasher

	// MintID produces session ids and reset tokens. Overridable in tests.
	MintID func() string
}

func NewAuthService(st store.Store) *AuthService {
	return &AuthService{
		Store:  st,
		Hasher: phcHasher{},
		MintID: uuid.NewString,
	}
}

// normalizeEmail fixes the email-comparison policy: case-insensitive,
// normalized to lowercase before every store access.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a freshly hashed password. Returns
// ErrUserExists when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
	}

	// Check-then-insert inside one transaction; the unique index on email
	// still backstops a racing registration.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByEmail(ctx, email)
		if err == nil {
			return ErrUserExists
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		if !errors.Is(err, ErrUserExists) {
			log.Error("failed to register user", slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// ValidLogin reports whether the credentials match a registered user. An
// unknown email or a wrong password is an ordinary false, never an error;
// the error return is reserved for store faults.
func (s *AuthService) ValidLogin(ctx context.Context, email, password string) (bool, error) {
	_, ok, err := s.VerifyCredentials(ctx, email, password)
	return ok, err
}

// VerifyCredentials is ValidLogin that also returns the matched user, for
// callers (HTTP Basic auth) that need the identity behind the credentials.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, bool, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.User{}, false, nil
		}
		// A malformed stored hash is a fault, not a wrong password.
		return domain.User{}, false, err
	}
	return user, true, nil
}

// CreateSession mints a fresh opaque session id for the user and stores it,
// superseding any previously active session. An unknown email yields an
// empty id and a nil error: the caller treats it as a failed login.
func (s *AuthService) CreateSession(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	sessionID := s.MintID()
	if err := s.Store.Users().UpdateSessionID(ctx, user.ID, sessionID); err != nil {
		log.Error("failed to store session", slog.String("user_id", user.ID), slog.Any("error", err))
		return "", err
	}

	log.Debug("session created", slog.String("user_id", user.ID))
	return sessionID, nil
}

// UserFromSession resolves a session id back to its owner. A missing or
// unknown id is a normal negative result: ok is false and err is nil.
func (s *AuthService) UserFromSession(ctx context.Context, sessionID string) (domain.User, bool, error) {
	if sessionID == "" {
		return domain.User{}, false, nil
	}

	user, err := s.Store.Users().GetUserBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return user, true, nil
}

// DestroySession clears the user's session id. It is idempotent: destroying
// an already logged-out or unknown user is not an error.
func (s *AuthService) DestroySession(ctx context.Context, userID string) error {
	err := s.Store.Users().UpdateSessionID(ctx, userID, "")
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	slogx.FromContext(ctx).Debug("session destroyed", slog.String("user_id", userID))
	return nil
}

// IssueResetToken mints and stores a single-use password-reset token,
// replacing any still-pending one. Unknown emails fail with ErrUserNotFound
// so the boundary can answer with a distinct status.
func (s *AuthService) IssueResetToken(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	token := s.MintID()
	if err := s.Store.Users().UpdateResetToken(ctx, user.ID, token); err != nil {
		log.Error("failed to store reset token", slog.String("user_id", user.ID), slog.Any("error", err))
		return "", err
	}

	log.Info("reset token issued", slog.String("user_id", user.ID))
	return token, nil
}

// ConsumeResetToken redeems a reset token: the new password is hashed and
// stored, and the token is cleared in the same atomic update, making the old
// hash permanently unverifiable and the token unusable a second time.
func (s *AuthService) ConsumeResetToken(ctx context.Context, resetToken, newPassword string) error {
	log := slogx.FromContext(ctx)

	if resetToken == "" {
		return ErrInvalidResetToken
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	var userID string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByResetToken(ctx, resetToken)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidResetToken
			}
			return err
		}
		userID = user.ID
		return tx.Users().UpdatePassword(ctx, user.ID, hash)
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidResetToken) {
			log.Error("failed to update password", slog.Any("error", err))
		}
		return err
	}

	log.Info("password updated", slog.String("user_id", userID))
	return nil
}
