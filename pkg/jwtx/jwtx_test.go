package jwtx_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stratusworks/rollcall/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "rollcall-test"})
	require.NoError(t, err)
	require.NoError(t, km.Signer.Validate())

	claims := jwtx.NewSessionClaims(
		"user-1", "sid-1", "employee", "alice@x.com", "Alice",
		time.Minute, "rollcall-test", time.Now(),
	)

	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	got, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "sid-1", got.SID)
	require.Equal(t, "employee", got.Role)
	require.Equal(t, "Alice", got.DisplayName)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "rollcall-test"})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"user-1", "sid-1", "employee", "alice@x.com", "Alice",
		time.Minute, "rollcall-test", time.Now().Add(-time.Hour),
	)

	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	t.Parallel()

	kmA, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "rollcall-test"})
	require.NoError(t, err)
	kmB, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "rollcall-test"})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"user-1", "sid-1", "admin", "bob@x.com", "Bob",
		time.Minute, "rollcall-test", time.Now(),
	)

	token, err := kmA.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = kmB.Verifier.Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "other-issuer"})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"user-1", "sid-1", "employee", "alice@x.com", "Alice",
		time.Minute, "rollcall-test", time.Now(),
	)

	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestPersistentKeyFileRoundTrip(t *testing.T) {
	t.Parallel()

	keyFile := filepath.Join(t.TempDir(), "session.pem")

	kmA, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "rollcall-test", KeyFile: keyFile})
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims(
		"user-1", "sid-1", "employee", "alice@x.com", "Alice",
		time.Minute, "rollcall-test", time.Now(),
	)
	token, err := kmA.Signer.Sign(claims)
	require.NoError(t, err)

	// A second manager loading the same file must verify tokens from the first.
	kmB, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "rollcall-test", KeyFile: keyFile})
	require.NoError(t, err)

	got, err := kmB.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
}
