package http

import (
	"net/http"

	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/pkg/httpx"
	"github.com/stratusworks/rollcall/pkg/rollcallsdk"
)

// RouteHandler serves GET /v1/session/route, the session gate.
type RouteHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Determine the initial route
//	@Description	Pure read answering where the client should land on launch. A live session routes home with its role context; everything else routes to the dashboard. Never errors on a bad token.
//	@Tags			Session
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rollcallsdk.RouteResponse	"route, role, just_logged_in"
//	@Router			/v1/session/route [get].
func (h *RouteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := h.SessionService.DetermineInitialRoute(r.Context(), bearerToken(r))

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.RouteResponse{
		Route:        string(route.Name),
		Role:         route.Role.String(),
		JustLoggedIn: route.JustLoggedIn,
	})
}
