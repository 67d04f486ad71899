package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/avolkov/hrdesk/internal/domain"
)

// dummyHash is a throwaway bcrypt hash compared against on the unknown-email
// path, so that path costs as much as a real compare and response timing does
// not reveal whether an email is registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and issues a token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration).
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials; real storage failures
		// keep their kind and surface as 5xx.
		if domain.Is(err, "user_not_found") {
			_ = s.hasher.Compare(dummyHash, password)
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, domain.ErrCorruptCredential(err)
	}

	tok, err := s.issueToken(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Token: tok}, nil
}
