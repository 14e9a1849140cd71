package rollcallsdk

// ErrorResponse is the wire format for every error the service returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// SignUpRequest creates an account bound to a role.
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// SignInRequest authenticates against one role portal.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SessionResponse is a granted session.
type SessionResponse struct {
	SessionToken string `json:"session_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

// RouteResponse answers where the client should land on launch.
type RouteResponse struct {
	Route        string `json:"route"`
	Role         string `json:"role,omitempty"`
	JustLoggedIn bool   `json:"just_logged_in"`
}

// CheckInRequest records attendance for the authenticated user. Date and
// the identity fields come from the session; latitude/longitude are omitted
// when the device did not capture a fix.
type CheckInRequest struct {
	Date         string   `json:"date"`
	Day          string   `json:"day,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	CheckInTime  string   `json:"check_in_time"`
	WorkingHours string   `json:"working_hours"`
	Attendance   string   `json:"attendance"`
	Status       string   `json:"status"`
}

// AttendanceResponse is one stored attendance record.
type AttendanceResponse struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	Day          string   `json:"day"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	CheckInTime  string   `json:"check_in_time"`
	WorkingHours string   `json:"working_hours"`
	Attendance   string   `json:"attendance"`
	Status       string   `json:"status"`
}

// DailyRecordResponse is one row of the reporting mirror.
type DailyRecordResponse struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Day          string `json:"day"`
	CheckInTime  string `json:"check_in_time"`
	WorkingHours string `json:"working_hours"`
	Attendance   string `json:"attendance"`
	Status       string `json:"status"`
}

// DailyReportResponse is the admin view of one date.
type DailyReportResponse struct {
	Date    string                `json:"date"`
	Records []DailyRecordResponse `json:"records"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks details the readiness of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
