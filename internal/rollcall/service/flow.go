package service

import "github.com/stratusworks/rollcall/internal/rollcall/domain"

// FlowState is a step in the login workflow.
type FlowState string

const (
	// FlowDashboard is the role-selection step, the workflow's start.
	FlowDashboard FlowState = "dashboard"

	// FlowSigningIn is the credentials step for a selected role.
	FlowSigningIn FlowState = "signing_in"

	// FlowSigningUp is the account-creation step for a selected role.
	FlowSigningUp FlowState = "signing_up"

	// FlowHome is the terminal signed-in step.
	FlowHome FlowState = "home"
)

// Flow is an immutable snapshot of a client's position in the login
// workflow. Transitions return a new Flow; invalid transitions return the
// receiver unchanged so a misbehaving client can never skip ahead.
type Flow struct {
	State        FlowState
	Role         domain.Role
	JustLoggedIn bool

	// Message is the last surfaced failure, cleared by any transition.
	Message string
}

// NewFlow starts at the dashboard.
func NewFlow() Flow {
	return Flow{State: FlowDashboard}
}

// SelectRole moves from the dashboard to the sign-in step for a role.
func (f Flow) SelectRole(role domain.Role) Flow {
	if f.State != FlowDashboard || !role.Valid() {
		return f
	}
	return Flow{State: FlowSigningIn, Role: role}
}

// BeginSignUp switches the credentials step over to account creation.
func (f Flow) BeginSignUp() Flow {
	if f.State != FlowSigningIn {
		return f
	}
	return Flow{State: FlowSigningUp, Role: f.Role}
}

// SignUpSucceeded returns to sign-in for the same role. A fresh account is
// never auto-logged-in.
func (f Flow) SignUpSucceeded() Flow {
	if f.State != FlowSigningUp {
		return f
	}
	return Flow{State: FlowSigningIn, Role: f.Role}
}

// SignInSucceeded lands on home with the just-logged-in marker set.
func (f Flow) SignInSucceeded() Flow {
	if f.State != FlowSigningIn {
		return f
	}
	return Flow{State: FlowHome, Role: f.Role, JustLoggedIn: true}
}

// Failed records a failure message without moving. Covers provider errors
// and role mismatches alike; neither advances the workflow.
func (f Flow) Failed(message string) Flow {
	f.Message = message
	f.JustLoggedIn = false
	return f
}

// SignedOut resets to the dashboard from anywhere.
func (f Flow) SignedOut() Flow {
	return NewFlow()
}

// Route projects the flow onto the client-facing route.
func (f Flow) Route() domain.InitialRoute {
	switch f.State {
	case FlowSigningIn:
		return domain.InitialRoute{Name: domain.RouteLogin, Role: f.Role}
	case FlowSigningUp:
		return domain.InitialRoute{Name: domain.RouteSignup, Role: f.Role}
	case FlowHome:
		return domain.InitialRoute{Name: domain.RouteHome, Role: f.Role, JustLoggedIn: f.JustLoggedIn}
	default:
		return domain.InitialRoute{Name: domain.RouteDashboard}
	}
}
