package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkov/hrdesk/internal/domain"
)

// Signup creates an account and issues a token for it. The raw password is
// hashed exactly once, here, and discarded. Duplicate emails surface as
// duplicate_email from the repo's uniqueness constraint.
func (s *Service) Signup(ctx context.Context, name, email, password, role string) (SignupResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return SignupResult{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return SignupResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return SignupResult{}, domain.ErrMissingField("password")
	}
	if role == "" {
		role = string(domain.RoleUser)
	}
	if !domain.IsValidRole(role) {
		return SignupResult{}, domain.ErrInvalidRole(role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return SignupResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return SignupResult{}, err
	}

	tok, err := s.issueToken(created)
	if err != nil {
		return SignupResult{}, err
	}

	return SignupResult{User: created, Token: tok}, nil
}
