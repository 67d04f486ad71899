package middleware

import (
	"net/http"

	"github.com/avolkov/hrdesk/internal/domain"
)

// RequireRole gates a route to callers holding exactly the given role.
// Assumes Auth() has already injected the role into context.
func RequireRole(role string, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := RoleFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Auth not applied) or context missing
				writeErr(w, r, domain.ErrForbidden())
				return
			}

			if !domain.IsValidRole(got) {
				writeErr(w, r, domain.ErrForbidden())
				return
			}

			if got != role {
				writeErr(w, r, domain.ErrInsufficientRole(role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is shorthand for the admin-only routes.
func RequireAdmin(writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return RequireRole(string(domain.RoleAdmin), writeErr)
}
