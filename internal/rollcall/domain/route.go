package domain

// RouteName identifies a top-level screen the client should show.
type RouteName string

const (
	// RouteDashboard is the role-selection screen shown to signed-out users.
	RouteDashboard RouteName = "dashboard"

	// RouteLogin is the credentials screen for a selected role.
	RouteLogin RouteName = "login"

	// RouteSignup is the account-creation screen for a selected role.
	RouteSignup RouteName = "signup"

	// RouteHome is the attendance screen for an authenticated user.
	RouteHome RouteName = "home"
)

// InitialRoute is the session gate's answer: where the client should land
// and with which role context.
type InitialRoute struct {
	Name         RouteName `json:"route"`
	Role         Role      `json:"role,omitempty"`
	JustLoggedIn bool      `json:"just_logged_in"`
}
