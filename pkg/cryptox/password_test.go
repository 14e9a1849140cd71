package cryptox_test

import (
	"path/filepath"
	"testing"

	"github.com/stratusworks/rollcall/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := cryptox.HashPassword("pw123")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	t.Run("accepts correct password", func(t *testing.T) {
		require.NoError(t, cryptox.VerifyPassword("pw123", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		require.ErrorIs(t, cryptox.VerifyPassword("pw124", hash), cryptox.ErrPasswordMismatch)
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		require.Error(t, cryptox.VerifyPassword("pw123", "not-a-hash"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		other, err := cryptox.HashPassword("pw123")
		require.NoError(t, err)
		require.NotEqual(t, hash, other)
	})
}
