package http_handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/hrdesk/internal/application/auth"
	"github.com/avolkov/hrdesk/internal/application/hr"
	"github.com/avolkov/hrdesk/internal/infrastructure/memory"
	"github.com/avolkov/hrdesk/internal/infrastructure/security"
	"github.com/avolkov/hrdesk/internal/transport/http/middleware"
)

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

// mustReadJSON decodes JSON from r into out, unwrapping a {"data": ...}
// envelope when present.
func mustReadJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	wrapped := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 {
		if err := json.Unmarshal(wrapped.Data, out); err != nil {
			t.Fatalf("decode wrapped.data failed; body=%s err=%v", string(raw), err)
		}
		return
	}

	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode json failed; body=%s", string(raw))
	}
}

// withUserCtx injects identity into request context the way Auth middleware does.
func withUserCtx(req *http.Request, userID, role string) *http.Request {
	ctx := middleware.WithUser(req.Context(), userID, "test@example.com", role)
	return req.WithContext(ctx)
}

// withURLParam injects a chi URL param (e.g. /users/{id}) into request
// context, reusing the route context when one is already attached.
func withURLParam(req *http.Request, key, val string) *http.Request {
	rctx, ok := req.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, val)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

// testEnv wires real services onto in-memory stores. bcrypt cost is the
// minimum to keep the suite fast.
type testEnv struct {
	users   *memory.UserRepo
	authSvc *auth.Service
	hrSvc   *hr.Service
	signer  *security.JWTSigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepo()
	departments := memory.NewDepartmentRepo(users)
	leaves := memory.NewLeaveRepo()
	announcements := memory.NewAnnouncementRepo()

	signer := security.NewJWTSigner("test-secret", "hrdesk-test")
	authSvc := auth.NewService(users, security.NewBcryptHasher(4), signer, auth.Config{TokenTTL: time.Minute})
	hrSvc := hr.NewService(users, authSvc, departments, leaves, announcements)

	return &testEnv{
		users:   users,
		authSvc: authSvc,
		hrSvc:   hrSvc,
		signer:  signer,
	}
}

// signupUser creates an account through the service and returns its id.
func (e *testEnv) signupUser(t *testing.T, name, email, role string) string {
	t.Helper()

	res, err := e.authSvc.Signup(context.Background(), name, email, "password123", role)
	if err != nil {
		t.Fatalf("signup %s: %v", email, err)
	}
	return res.User.ID
}
