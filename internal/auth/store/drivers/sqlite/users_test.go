package sqlite_test

import (
	"context"
	"testing"

	"github.com/lanternhq/authd/internal/auth/domain"
	"github.com/lanternhq/authd/internal/auth/store"
	"github.com/lanternhq/authd/internal/auth/store/drivers/sqlite"
	"github.com/lanternhq/authd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *sqlite.Store, email string) domain.User {
	t.Helper()
	ctx := context.Background()

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	return u
}

func TestCreateUserEmailConflict(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := seedUser(t, st, "alice@example.com")

	dup := domain.User{ID: idx.New().String(), Email: "alice@example.com", PasswordHash: "hash"}
	err := st.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// The original record is untouched.
	got, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, first.PasswordHash, got.PasswordHash)
}

func TestLookupsByAttribute(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "bob@example.com")
	require.NoError(t, st.Users().UpdateSessionID(ctx, u.ID, "session-1"))
	require.NoError(t, st.Users().UpdateResetToken(ctx, u.ID, "reset-1"))

	byID, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "bob@example.com", byID.Email)

	bySession, err := st.Users().GetUserBySessionID(ctx, "session-1")
	require.NoError(t, err)
	require.Equal(t, u.ID, bySession.ID)

	byToken, err := st.Users().GetUserByResetToken(ctx, "reset-1")
	require.NoError(t, err)
	require.Equal(t, u.ID, byToken.ID)

	_, err = st.Users().GetUserBySessionID(ctx, "garbage")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateSessionIDClears(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "carol@example.com")
	require.NoError(t, st.Users().UpdateSessionID(ctx, u.ID, "session-2"))

	// Clearing writes NULL, freeing the unique slot.
	require.NoError(t, st.Users().UpdateSessionID(ctx, u.ID, ""))
	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, got.SessionID)

	_, err = st.Users().GetUserBySessionID(ctx, "session-2")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePasswordClearsResetToken(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "dave@example.com")
	require.NoError(t, st.Users().UpdateResetToken(ctx, u.ID, "reset-2"))

	require.NoError(t, st.Users().UpdatePassword(ctx, u.ID, "new-hash"))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
	require.Empty(t, got.ResetToken)
}

func TestUpdatesOnUnknownID(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	unknown := idx.New().String()
	require.ErrorIs(t, st.Users().UpdateSessionID(ctx, unknown, "sid"), store.ErrNotFound)
	require.ErrorIs(t, st.Users().UpdateResetToken(ctx, unknown, "tok"), store.ErrNotFound)
	require.ErrorIs(t, st.Users().UpdatePassword(ctx, unknown, "hash"), store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	wantErr := store.ErrAlreadyExists // any sentinel will do
	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Email:        "eve@example.com",
			PasswordHash: "hash",
		}))
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	_, err = st.Users().GetUserByEmail(ctx, "eve@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCountUsers(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	n, err := st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	seedUser(t, st, "one@example.com")
	seedUser(t, st, "two@example.com")

	n, err = st.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
