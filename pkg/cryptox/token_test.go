package cryptox_test

import (
	"testing"

	"github.com/stratusworks/rollcall/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("tokens are unique", func(t *testing.T) {
		a, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		b, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	fp := cryptox.FingerprintToken("session-token")
	require.Equal(t, fp, cryptox.FingerprintToken("session-token"))
	require.NotEqual(t, fp, cryptox.FingerprintToken("other-token"))
	require.Len(t, fp, 43) // sha256, base64url without padding
}
