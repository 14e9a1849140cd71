package rollcallsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a rollcall service. Unauthenticated operations live on
// the Client; a successful SignIn returns a Session for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated client bound to one session token.
type Session struct {
	client *Client
	token  string
	userID string
	role   string
}

// Token returns the raw session token.
func (s *Session) Token() string { return s.token }

// UserID returns the authenticated user id.
func (s *Session) UserID() string { return s.userID }

// Role returns the role the session was granted for.
func (s *Session) Role() string { return s.role }

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("rollcallsdk: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := parseErrorResponse(resp, raw); err != nil {
		return err
	}

	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// SignUp creates an account for the given role portal. It does not sign
// the account in.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/signup", "", req, nil)
}

// SignIn authenticates against a role portal and returns an authenticated
// Session on success.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	var resp SessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/signin", "", req, &resp); err != nil {
		return nil, err
	}
	return &Session{
		client: c,
		token:  resp.SessionToken,
		userID: resp.UserID,
		role:   resp.Role,
	}, nil
}

// SessionFromToken wraps an existing token in a Session.
func (c *Client) SessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// InitialRoute asks where a client holding token should land. An empty
// token is fine and routes to the dashboard.
func (c *Client) InitialRoute(ctx context.Context, token string) (RouteResponse, error) {
	var resp RouteResponse
	err := c.do(ctx, http.MethodGet, "/v1/session/route", token, nil, &resp)
	return resp, err
}

// Livez reports process liveness.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &resp)
	return resp, err
}

// Readyz reports readiness (database reachable, keys loaded).
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &resp)
	return resp, err
}

// SignOut revokes the session. Safe to call repeatedly.
func (s *Session) SignOut(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/v1/auth/signout", s.token, nil, nil)
}

// CheckIn records attendance for the session's user.
func (s *Session) CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error) {
	var resp AttendanceResponse
	err := s.client.do(ctx, http.MethodPut, "/v1/attendance/checkin", s.token, req, &resp)
	return resp, err
}

// Attendance reads the session user's record for a date.
func (s *Session) Attendance(ctx context.Context, date string) (AttendanceResponse, error) {
	var resp AttendanceResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/attendance/"+date+"/me", s.token, nil, &resp)
	return resp, err
}

// DailyReport reads every user's daily record for a date. Admin only.
func (s *Session) DailyReport(ctx context.Context, date string) (DailyReportResponse, error) {
	var resp DailyReportResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/attendance/"+date, s.token, nil, &resp)
	return resp, err
}

// InitialRoute asks where this session's client should land.
func (s *Session) InitialRoute(ctx context.Context) (RouteResponse, error) {
	return s.client.InitialRoute(ctx, s.token)
}
