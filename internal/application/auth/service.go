package auth

import (
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	tokenTTL time.Duration
}

type Config struct {
	TokenTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		signer:   signer,
		tokenTTL: ttl,
	}
}

// Token is the issued bearer token plus the metadata handlers echo back.
type Token struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds
}

type SignupResult struct {
	User  domain.User
	Token Token
}

type LoginResult struct {
	User  domain.User
	Token Token
}

func (s *Service) issueToken(u domain.User) (Token, error) {
	access, err := s.signer.SignAccessToken(u.ID, u.Email, u.Role, s.tokenTTL)
	if err != nil {
		return Token{}, domain.ErrTokenSignFailed(err)
	}
	return Token{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}
