package middleware

import (
	"net/http"
	"strings"

	"github.com/avolkov/hrdesk/internal/application/auth"
	"github.com/avolkov/hrdesk/internal/domain"
	"github.com/avolkov/hrdesk/internal/logger"
)

type TokenVerifier interface {
	VerifyAccessToken(token string) (auth.TokenClaims, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <access_token> and injects the caller's
// identity into the request context.
//
// Only a missing token yields 401. Every verification failure (bad signature,
// expired, malformed) is collapsed to a generic 403 so a caller cannot probe
// which check rejected the token; the specific reason is logged server-side.
func Auth(verifier TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			claims, err := verifier.VerifyAccessToken(raw)
			if err != nil {
				logger.WithCtx(r.Context()).Warn().Err(err).Msg("token rejected")
				writeErr(w, r, domain.ErrForbidden())
				return
			}

			if strings.TrimSpace(claims.UserID) == "" {
				logger.WithCtx(r.Context()).Warn().Msg("token missing subject")
				writeErr(w, r, domain.ErrForbidden())
				return
			}

			ctx := WithUser(r.Context(), claims.UserID, claims.Email, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header. A header
// present but not in Bearer form is treated the same as no token.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
