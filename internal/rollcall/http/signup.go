package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/stratusworks/rollcall/internal/rollcall/domain"
	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/pkg/httpx"
	"github.com/stratusworks/rollcall/pkg/rollcallsdk"
	"github.com/stratusworks/rollcall/pkg/slogx"
)

// SignUpHandler serves POST /v1/auth/signup.
type SignUpHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Create an account
//	@Description	Creates an account bound to a role portal. Success means both the account and its role were persisted; a role write failure unwinds the account. A fresh account is not signed in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		rollcallsdk.SignUpRequest	true	"email, password, display_name, role"
//	@Success		201		{object}	map[string]string			"status"
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.SignUpRequest
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

	err = h.AuthService.SignUp(ctx, req.Email, req.Password, strings.TrimSpace(req.DisplayName), role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialPolicy):
			rollcallsdk.NewAPIError(
				http.StatusBadRequest,
				rollcallsdk.ErrorCodeCredentialPolicy,
				description(err),
			).WriteError(w)
		case errors.Is(err, service.ErrAccountConflict):
			rollcallsdk.NewAPIError(
				http.StatusConflict,
				rollcallsdk.ErrorCodeAccountConflict,
				description(err),
			).WriteError(w)
		default:
			log.Error("sign-up failed", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}
