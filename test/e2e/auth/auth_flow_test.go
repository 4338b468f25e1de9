package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestAuthFlow exercises the full account lifecycle against a running
// container: register, fail a login, read the profile, log out, reset the
// password and log back in with the new one.
func TestAuthFlow(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t, nil)
	defer cleanup()

	ctx := context.Background()
	client := authsdk.NewSDKClient(baseURL)

	t.Run("index greets visitors", func(t *testing.T) {
		msg, err := client.GetIndex(ctx)
		require.NoError(t, err)
		require.Equal(t, "Bienvenue", msg.Message)
	})

	t.Run("register", func(t *testing.T) {
		registerTestUser(t, client)
	})

	t.Run("register again rejects the email", func(t *testing.T) {
		_, err := client.Register(ctx, testEmail, testPassword)
		assertAPIError(t, err, http.StatusBadRequest, "duplicate registration")
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, testEmail, "wrong"+testPassword)
		assertAPIError(t, err, http.StatusUnauthorized, "wrong password login")
	})

	t.Run("profile without a session", func(t *testing.T) {
		resp, err := client.HTTPClient.Get(baseURL + "/profile")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	var session *authsdk.Session

	t.Run("login", func(t *testing.T) {
		var err error
		session, err = client.Login(ctx, testEmail, testPassword)
		require.NoError(t, err)
		require.Equal(t, testEmail, session.Email())
		require.NotEmpty(t, session.SessionID())
	})

	t.Run("profile while logged in", func(t *testing.T) {
		profile, err := session.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, testEmail, profile.Email)
	})

	t.Run("me while logged in", func(t *testing.T) {
		user, err := session.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, testEmail, user.Email)
		require.NotEmpty(t, user.ID)
	})

	t.Run("logout", func(t *testing.T) {
		require.NoError(t, session.Logout(ctx))
	})

	t.Run("profile after logout", func(t *testing.T) {
		_, err := session.Profile(ctx)
		assertAPIError(t, err, http.StatusForbidden, "profile after logout")
	})

	var resetToken string
	newPassword := "t4rt1fl3tt3"

	t.Run("request reset token", func(t *testing.T) {
		token, err := client.RequestPasswordReset(ctx, testEmail)
		require.NoError(t, err)
		require.Equal(t, testEmail, token.Email)
		require.NotEmpty(t, token.ResetToken)
		resetToken = token.ResetToken
	})

	t.Run("update password", func(t *testing.T) {
		msg, err := client.UpdatePassword(ctx, testEmail, resetToken, newPassword)
		require.NoError(t, err)
		require.Equal(t, "Password updated", msg.Message)
	})

	t.Run("old password no longer works", func(t *testing.T) {
		_, err := client.Login(ctx, testEmail, testPassword)
		assertAPIError(t, err, http.StatusUnauthorized, "login with retired password")
	})

	t.Run("reset token is single use", func(t *testing.T) {
		_, err := client.UpdatePassword(ctx, testEmail, resetToken, "another-one")
		assertAPIError(t, err, http.StatusForbidden, "reused reset token")
	})

	t.Run("login with new password", func(t *testing.T) {
		fresh, err := client.Login(ctx, testEmail, newPassword)
		require.NoError(t, err)

		profile, err := fresh.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, testEmail, profile.Email)
	})
}

// TestResetTokenUnknownEmail verifies the reset endpoint refuses emails it
// has never seen.
func TestResetTokenUnknownEmail(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t, nil)
	defer cleanup()

	client := authsdk.NewSDKClient(baseURL)

	_, err := client.RequestPasswordReset(context.Background(), "nobody@holberton.io")
	assertAPIError(t, err, http.StatusForbidden, "reset for unknown email")
}
