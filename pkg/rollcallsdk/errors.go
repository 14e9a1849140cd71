package rollcallsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stratusworks/rollcall/pkg/httpx"
)

// Error codes shared between the server and the SDK.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeCredentialPolicy = "credential_policy"
	ErrorCodeAccountConflict  = "account_conflict"
	ErrorCodeInvalidGrant     = "invalid_grant"
	ErrorCodeRoleMismatch     = "role_mismatch"
	ErrorCodeInvalidRecord    = "invalid_record"
	ErrorCodeInvalidToken     = "invalid_token"
	ErrorCodeInsufficientRole = "insufficient_role"
	ErrorCodeNotFound         = "not_found"
	ErrorCodeServerError      = "server_error"
)

// APIError is the service's wire-level error. It implements the error
// interface and is used by the server to write responses and by the SDK
// client to represent them.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request is malformed or missing
	// required parameters.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidJSONBody is returned when the JSON body cannot be parsed.
	ErrInvalidJSONBody = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "invalid JSON body",
	}

	// ErrInvalidGrant is returned when the email/password pair is wrong.
	ErrInvalidGrant = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidGrant,
		Description: "invalid credentials",
	}

	// ErrInvalidToken is returned when the session token is missing,
	// invalid, expired or revoked.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the session token is missing, invalid, expired or revoked",
	}

	// ErrInsufficientRole is returned when the caller's role does not allow
	// the operation.
	ErrInsufficientRole = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeInsufficientRole,
		Description: "the session role does not allow this operation",
	}

	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "record not found",
	}

	// ErrServerError is returned on unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with a custom description, keeping the
// wire format consistent.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for success responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
