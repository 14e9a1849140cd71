package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/pkg/httpx"
	"github.com/stratusworks/rollcall/pkg/rollcallsdk"
	"github.com/stratusworks/rollcall/pkg/slogx"
)

// SignInHandler serves POST /v1/auth/signin.
type SignInHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Sign in to a role portal
//	@Description	Authenticates credentials, then compares the account's stored role with the requested portal. A mismatch revokes the session before answering, so a mismatched attempt never yields a usable token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		rollcallsdk.SignInRequest	true	"email, password, role"
//	@Success		200		{object}	rollcallsdk.SessionResponse	"session_token, token_type, expires_in, user_id, role"
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" || req.Role == "" {
		rollcallsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		rollcallsdk.NewAPIError(
			http.StatusBadRequest,
			rollcallsdk.ErrorCodeInvalidRequest,
			err.Error(),
		).WriteError(w)
		return
	}

	res, err := h.AuthService.SignIn(ctx, req.Email, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthentication):
			rollcallsdk.ErrInvalidGrant.WriteError(w)
		case errors.Is(err, service.ErrRoleMismatch):
			rollcallsdk.NewAPIError(
				http.StatusForbidden,
				rollcallsdk.ErrorCodeRoleMismatch,
				description(err),
			).WriteError(w)
		default:
			log.Error("sign-in failed", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	response := rollcallsdk.SessionResponse{
		SessionToken: res.Token,
		TokenType:    "Bearer",
		ExpiresIn:    int(time.Until(res.ExpiresAt).Seconds()),
		UserID:       res.UserID,
		Role:         res.Role.String(),
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
