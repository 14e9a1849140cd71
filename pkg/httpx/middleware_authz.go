package httpx

import (
	"net/http"
	"strings"
)

// RequireRole lets the request through only when the session was granted one
// of the listed roles. Note the role claim is only a routing hint minted at
// sign-in; handlers performing sensitive writes re-verify against the role
// store.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[roleFromCtx(r.Context())]; ok {
				next.ServeHTTP(w, r)
				return
			}

			writeBearerRoleError(w, allowed...)
		})
	}
}

// RFC 6750-style error response for an insufficient role.
func writeBearerRoleError(w http.ResponseWriter, allowed ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+strings.Join(allowed, " ")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
