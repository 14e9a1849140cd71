package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stratusworks/rollcall/internal/rollcall/identity"
	"github.com/stratusworks/rollcall/internal/rollcall/service"
	"github.com/stratusworks/rollcall/internal/rollcall/store"
	"github.com/stratusworks/rollcall/pkg/httpx"
	"github.com/stratusworks/rollcall/pkg/jwtx"
	"github.com/stratusworks/rollcall/pkg/slogx"

	_ "github.com/stratusworks/rollcall/api/rollcall" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	Provider          identity.Provider
	AuthService       *service.AuthService
	SessionService    *service.SessionService
	AttendanceService *service.AttendanceService
	RoleService       *service.RoleService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSession()
	r.registerAttendance()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Rollcall Attendance Service API
//	@version		0.1.0
//	@description	Role-aware employee attendance service: sign up and sign in against a role portal, record daily check-ins, and read daily reports.
//	@description
//	@description				Session tokens are EdDSA-signed JWTs backed by revocable server-side sessions.
//
//	@contact.name				StratusWorks Team
//	@contact.url				https://github.com/stratusworks/rollcall
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/signup - strict rate limit by IP (account creation)
	signupHandler := &SignUpHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/signin - strict rate limit by IP (authentication attempts)
	signinHandler := &SignInHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/signin",
		httpx.Chain(signinHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/signout - moderate rate limit; no authn middleware so a
	// stale or garbage token still gets the idempotent no-op success.
	signoutHandler := &SignOutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/signout",
		httpx.Chain(signoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSession() {
	// GET /session/route - lenient limit, runs on every client launch.
	// Unauthenticated on purpose: a missing token is a dashboard answer,
	// not an error.
	h := &RouteHandler{SessionService: r.SessionService}
	r.Mux.Handle("GET /v1/session/route",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAttendance() {
	checkInHandler := &CheckInHandler{
		Provider:          r.Provider,
		AttendanceService: r.AttendanceService,
	}

	// PUT /attendance/checkin - authenticated, moderate rate limit by user
	r.Mux.Handle("PUT /v1/attendance/checkin",
		httpx.Chain(checkInHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	myHandler := &MyAttendanceHandler{
		Provider:          r.Provider,
		AttendanceService: r.AttendanceService,
	}
	r.Mux.Handle("GET /v1/attendance/{date}/me",
		httpx.Chain(myHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// GET /attendance/{date} - admin reporting. RequireRole filters on the
	// session's role claim early; the handler re-reads the authoritative
	// role before answering.
	reportHandler := &DailyReportHandler{
		Provider:          r.Provider,
		AttendanceService: r.AttendanceService,
		RoleService:       r.RoleService,
	}
	r.Mux.Handle("GET /v1/attendance/{date}",
		httpx.Chain(reportHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

// bearerToken extracts the raw bearer token, or "" when absent.
func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
}

// description strips the leading "kind: " token from a service error so the
// human-readable part can travel in error_description.
func description(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
