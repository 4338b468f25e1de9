package domain_test

import (
	"testing"

	"github.com/lanternhq/authd/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestUserPredicates(t *testing.T) {
	var user domain.User
	require.False(t, user.LoggedIn())
	require.False(t, user.ResetPending())

	user.SessionID = "3f4d5e6a"
	require.True(t, user.LoggedIn())
	require.False(t, user.ResetPending())

	user.SessionID = ""
	user.ResetToken = "7b8c9d0e"
	require.False(t, user.LoggedIn())
	require.True(t, user.ResetPending())
}
