package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/identity"
	"github.com/stratusworks/rollcall/internal/rollcall/prefs"
	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
	"github.com/stratusworks/rollcall/internal/rollcall/store/drivers/sqlite"
	"github.com/stratusworks/rollcall/pkg/cryptox"
	"github.com/stratusworks/rollcall/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	store      store.Store
	provider   *identity.LocalProvider
	roles      *service.RoleService
	auth       *service.AuthService
	attendance *service.AttendanceService
	session    *service.SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{Issuer: "rollcall-test"})
	require.NoError(t, err)

	provider := &identity.LocalProvider{
		Store:      st,
		KeyManager: km,
		Issuer:     "rollcall-test",
	}
	roles := &service.RoleService{
		Store: st,
		Prefs: prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json")),
	}

	return &testEnv{
		store:      st,
		provider:   provider,
		roles:      roles,
		auth:       &service.AuthService{Provider: provider, Roles: roles},
		attendance: service.NewAttendanceService(st),
		session:    &service.SessionService{Provider: provider, Roles: roles},
	}
}

func TestSignUpThenSignIn_SameRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.auth.SignUp(ctx, "alice@example.com", "secret123", "Alice", domain.RoleEmployee)
	require.NoError(t, err)

	res, err := env.auth.SignIn(ctx, "alice@example.com", "secret123", domain.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, domain.RoleEmployee, res.Role)

	require.True(t, env.auth.IsLoggedIn(ctx, res.Token))
}

func TestSignIn_RoleMismatchNeverSucceeds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Alice registers through the employee portal, then tries the admin one.
	require.NoError(t, env.auth.SignUp(ctx, "alice@example.com", "secret123", "Alice", domain.RoleEmployee))

	res, err := env.auth.SignIn(ctx, "alice@example.com", "secret123", domain.RoleAdmin)
	require.ErrorIs(t, err, service.ErrRoleMismatch)
	require.Empty(t, res.Token)

	// The mismatch must not leave a usable session behind.
	route := env.session.DetermineInitialRoute(ctx, res.Token)
	require.Equal(t, domain.RouteDashboard, route.Name)

	// The employee portal still works afterwards.
	res, err = env.auth.SignIn(ctx, "alice@example.com", "secret123", domain.RoleEmployee)
	require.NoError(t, err)
	require.True(t, env.auth.IsLoggedIn(ctx, res.Token))
}

func TestSignUp_ErrorKinds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("weak password", func(t *testing.T) {
		err := env.auth.SignUp(ctx, "bob@example.com", "pw", "Bob", domain.RoleEmployee)
		require.ErrorIs(t, err, service.ErrCredentialPolicy)
	})

	t.Run("malformed email", func(t *testing.T) {
		err := env.auth.SignUp(ctx, "nope", "secret123", "Bob", domain.RoleEmployee)
		require.ErrorIs(t, err, service.ErrCredentialPolicy)
	})

	t.Run("duplicate email", func(t *testing.T) {
		require.NoError(t, env.auth.SignUp(ctx, "bob@example.com", "secret123", "Bob", domain.RoleEmployee))
		err := env.auth.SignUp(ctx, "bob@example.com", "other1234", "Imposter", domain.RoleAdmin)
		require.ErrorIs(t, err, service.ErrAccountConflict)
	})

	t.Run("invalid role", func(t *testing.T) {
		err := env.auth.SignUp(ctx, "carol@example.com", "secret123", "Carol", domain.Role("manager"))
		require.ErrorIs(t, err, service.ErrCredentialPolicy)
	})
}

func TestSignIn_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.SignUp(ctx, "alice@example.com", "secret123", "Alice", domain.RoleEmployee))

	_, err := env.auth.SignIn(ctx, "alice@example.com", "wrongpass", domain.RoleEmployee)
	require.ErrorIs(t, err, service.ErrAuthentication)
}

func TestSignOut_IsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.auth.SignUp(ctx, "alice@example.com", "secret123", "Alice", domain.RoleEmployee))
	res, err := env.auth.SignIn(ctx, "alice@example.com", "secret123", domain.RoleEmployee)
	require.NoError(t, err)

	require.True(t, env.auth.IsLoggedIn(ctx, res.Token))

	require.NoError(t, env.auth.SignOut(ctx, res.Token))
	require.False(t, env.auth.IsLoggedIn(ctx, res.Token))

	// Repeat sign-out, and sign-out of garbage, both succeed.
	require.NoError(t, env.auth.SignOut(ctx, res.Token))
	require.NoError(t, env.auth.SignOut(ctx, "not.a.token"))
}

// failingRoleStore wraps a real store but refuses role writes, to exercise
// the compensating delete on sign-up.
type failingRoleStore struct {
	store.Store
}

type failingUserRoles struct {
	store.UserRoles
}

func (f *failingRoleStore) UserRoles() store.UserRoles {
	return &failingUserRoles{f.Store.UserRoles()}
}

func (f *failingUserRoles) SetRole(ctx context.Context, userID string, role domain.Role) error {
	return errors.New("role backend down")
}

func TestSignUp_RoleWriteFailureUnwindsAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.auth.Roles = &service.RoleService{
		Store: &failingRoleStore{env.store},
		Prefs: env.roles.Prefs,
	}

	err := env.auth.SignUp(ctx, "alice@example.com", "secret123", "Alice", domain.RoleEmployee)
	require.ErrorIs(t, err, service.ErrRemoteWrite)

	// The account must be gone again, so the email is free to retry.
	_, err = env.store.Users().GetUserByEmail(ctx, "alice@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	env.auth.Roles = env.roles
	require.NoError(t, env.auth.SignUp(ctx, "alice@example.com", "secret123", "Alice", domain.RoleEmployee))
}

func TestSignIn_NoRoleRecorded(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// An account created out-of-band, without a role row.
	_, err := env.provider.CreateAccount(ctx, "ghost@example.com", "secret123", "Ghost")
	require.NoError(t, err)

	_, err = env.auth.SignIn(ctx, "ghost@example.com", "secret123", domain.RoleEmployee)
	require.ErrorIs(t, err, service.ErrRemoteRead)
}
