package response

import (
	"net/http"

	pkgctx "github.com/avolkov/hrdesk/internal/pkg/context"
)

// RequestIDFromContext extracts the request id set by the request-id middleware.
func RequestIDFromContext(r *http.Request) string {
	return pkgctx.RequestID(r.Context())
}
