package rollcall_test

import (
	"testing"

	"github.com/stratusworks/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh
// service.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check reports the database and
// signer as healthy.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t)
	defer cleanup()

	client := rollcallsdk.NewClient(baseURL)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)

	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "ok", health.Checks.Signer)

	t.Logf("Readyz endpoint is healthy")
}
