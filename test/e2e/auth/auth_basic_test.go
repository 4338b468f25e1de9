package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestBasicAuthGuard runs the service with AUTH_TYPE=basic and verifies the
// guarded endpoint accepts HTTP Basic credentials instead of cookies.
func TestBasicAuthGuard(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t, map[string]string{
		"AUTH_TYPE": "basic",
	})
	defer cleanup()

	ctx := context.Background()
	client := authsdk.NewSDKClient(baseURL)

	registerTestUser(t, client)

	t.Run("challenges without credentials", func(t *testing.T) {
		resp, err := client.HTTPClient.Get(baseURL + "/users/me")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Basic")
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := client.MeWithBasicAuth(ctx, testEmail, "wrong"+testPassword)
		assertAPIError(t, err, http.StatusForbidden, "basic auth with wrong password")
	})

	t.Run("accepts valid credentials", func(t *testing.T) {
		user, err := client.MeWithBasicAuth(ctx, testEmail, testPassword)
		require.NoError(t, err)
		require.Equal(t, testEmail, user.Email)
		require.NotEmpty(t, user.ID)
	})
}
