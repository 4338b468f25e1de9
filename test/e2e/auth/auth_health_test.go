package auth_test

import (
	"context"
	"testing"

	"github.com/lanternhq/authd/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies the liveness and readiness probes against a
// running container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t, nil)
	defer cleanup()

	ctx := context.Background()
	client := authsdk.NewSDKClient(baseURL)

	t.Run("livez", func(t *testing.T) {
		health, err := client.GetLiveness(ctx)
		assertHealthy(t, health, err)
		require.NotEmpty(t, health.Uptime)
		require.NotEmpty(t, health.Version)
	})

	t.Run("readyz", func(t *testing.T) {
		health, err := client.GetReadiness(ctx)
		assertHealthy(t, health, err)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
