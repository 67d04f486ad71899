package auth

import (
	"context"
	"strings"

	"github.com/avolkov/hrdesk/internal/domain"
)

type VerifyResult struct {
	Claims TokenClaims
	User   domain.User
}

// VerifyToken validates a bearer token and resolves the identity it names.
// Claims are authoritative until expiry even if the user record has since
// changed; the record is fetched only to echo the current profile.
func (s *Service) VerifyToken(ctx context.Context, token string) (VerifyResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return VerifyResult{}, domain.ErrTokenMissing()
	}

	claims, err := s.signer.VerifyAccessToken(token)
	if err != nil {
		return VerifyResult{}, err
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return VerifyResult{}, err
	}

	return VerifyResult{Claims: claims, User: u}, nil
}

// GetUser resolves a user by id for the /me endpoint.
func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}
