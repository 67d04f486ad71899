package http_handlers

import (
	"net/http"
	"strings"

	"github.com/avolkov/hrdesk/internal/application/auth"
	"github.com/avolkov/hrdesk/internal/domain"
	"github.com/avolkov/hrdesk/internal/logger"
	"github.com/avolkov/hrdesk/internal/transport/http/dto"
	"github.com/avolkov/hrdesk/internal/transport/http/middleware"
	"github.com/avolkov/hrdesk/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Signup(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if domain.Is(err, "duplicate_email") {
			middleware.SignupsTotal.WithLabelValues("duplicate_email").Inc()
		} else {
			middleware.SignupsTotal.WithLabelValues("error").Inc()
		}
		response.WriteError(w, r, err)
		return
	}

	middleware.SignupsTotal.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Str("email", res.User.Email).
		Msg("user_signed_up")

	response.Created(w, dto.AuthData{
		User: dto.NewUserView(res.User),
		Tokens: dto.TokensView{
			AccessToken: res.Token.AccessToken,
			TokenType:   res.Token.TokenType,
			ExpiresIn:   res.Token.ExpiresIn,
		},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.Is(err, "invalid_credentials") {
			middleware.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			middleware.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		response.WriteError(w, r, err)
		return
	}

	middleware.LoginAttemptsTotal.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.AuthData{
		User: dto.NewUserView(res.User),
		Tokens: dto.TokensView{
			AccessToken: res.Token.AccessToken,
			TokenType:   res.Token.TokenType,
			ExpiresIn:   res.Token.ExpiresIn,
		},
	})
}

// Verify checks a bearer token without requiring the auth middleware, so
// clients can probe a stored token before using it. The token comes from
// the Authorization header or, as a fallback, the request body.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	raw := bearerToken(r)
	if raw == "" && r.Body != nil && r.ContentLength != 0 {
		var req dto.VerifyRequest
		if err := response.DecodeJSON(r, &req); err != nil {
			response.WriteError(w, r, err)
			return
		}
		raw = strings.TrimSpace(req.Token)
	}

	res, err := h.svc.VerifyToken(r.Context(), raw)
	if err != nil {
		switch {
		case domain.Is(err, "token_missing"):
			// The token is request input here, so absence is a bad
			// request rather than an auth challenge.
			response.WriteError(w, r, domain.New(domain.KindValidation, "token_missing", "no token provided"))
		case domain.Is(err, "token_malformed"):
			response.WriteError(w, r, domain.New(domain.KindValidation, "token_malformed", "malformed token"))
		default:
			// Expired and bad-signature collapse, same as the auth
			// middleware: the caller learns the token is unusable,
			// not which check failed.
			logger.WithCtx(r.Context()).Warn().Err(err).Msg("verify rejected")
			response.WriteError(w, r, domain.ErrForbidden())
		}
		return
	}

	response.OK(w, dto.VerifyData{
		Valid: true,
		User:  dto.NewUserView(res.User),
	})
}

// Me returns the profile of the authenticated caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	u, err := h.svc.GetUser(r.Context(), uid)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeData{User: dto.NewUserView(u)})
}

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
