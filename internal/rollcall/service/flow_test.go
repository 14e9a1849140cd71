package service_test

import (
	"testing"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/service"

	"github.com/stretchr/testify/require"
)

func TestFlow_HappySignInPath(t *testing.T) {
	f := service.NewFlow()
	require.Equal(t, service.FlowDashboard, f.State)

	f = f.SelectRole(domain.RoleEmployee)
	require.Equal(t, service.FlowSigningIn, f.State)
	require.Equal(t, domain.RoleEmployee, f.Role)

	f = f.SignInSucceeded()
	require.Equal(t, service.FlowHome, f.State)
	require.True(t, f.JustLoggedIn)
	require.Equal(t, domain.RouteHome, f.Route().Name)
}

func TestFlow_SignUpReturnsToSignIn(t *testing.T) {
	f := service.NewFlow().SelectRole(domain.RoleAdmin).BeginSignUp()
	require.Equal(t, service.FlowSigningUp, f.State)

	// No auto-login after account creation.
	f = f.SignUpSucceeded()
	require.Equal(t, service.FlowSigningIn, f.State)
	require.Equal(t, domain.RoleAdmin, f.Role)
	require.False(t, f.JustLoggedIn)
}

func TestFlow_FailurePreservesState(t *testing.T) {
	f := service.NewFlow().SelectRole(domain.RoleEmployee)

	f = f.Failed("account is registered as admin")
	require.Equal(t, service.FlowSigningIn, f.State)
	require.Equal(t, "account is registered as admin", f.Message)
	require.False(t, f.JustLoggedIn)

	// A later transition clears the message.
	f = f.SignInSucceeded()
	require.Empty(t, f.Message)
}

func TestFlow_InvalidTransitionsAreNoOps(t *testing.T) {
	f := service.NewFlow()

	require.Equal(t, f, f.SignInSucceeded())
	require.Equal(t, f, f.BeginSignUp())
	require.Equal(t, f, f.SelectRole(domain.Role("manager")))

	home := f.SelectRole(domain.RoleEmployee).SignInSucceeded()
	require.Equal(t, home, home.SelectRole(domain.RoleAdmin))
}

func TestFlow_SignedOutResets(t *testing.T) {
	f := service.NewFlow().SelectRole(domain.RoleEmployee).SignInSucceeded().SignedOut()
	require.Equal(t, service.FlowDashboard, f.State)
	require.Equal(t, domain.RouteDashboard, f.Route().Name)
}
