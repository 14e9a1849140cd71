package http

import (
	"net/http"

	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/pkg/rollcallsdk"
	"github.com/stratusworks/rollcall/pkg/slogx"
)

// SignOutHandler serves POST /v1/auth/signout.
type SignOutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Sign out
//	@Description	Revokes the bearer session. Idempotent: unknown, expired, and already revoked tokens all answer 204.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		204	"no content"
//	@Failure		500	{object}	rollcallsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signout [post].
func (h *SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.AuthService.SignOut(ctx, bearerToken(r)); err != nil {
		slogx.FromContext(ctx).Error("sign-out failed", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
