package auth

import (
	"context"
	"errors"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth core needs, not HOW it's stored.
The storage layer must enforce email uniqueness with a constraint;
the check-then-insert race is resolved there, not here.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// ErrPasswordMismatch is returned by PasswordHasher.Compare when the password
// does not match the stored hash. Any other non-nil error means the stored
// hash itself is unreadable.
var ErrPasswordMismatch = errors.New("password mismatch")

/*
PasswordHasher
--------------
Abstracts the salted one-way hash (bcrypt in production).
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies signed bearer tokens.
Used by the service and the auth middleware.
*/
type TokenClaims struct {
	UserID   string
	Email    string
	Role     string
	IssuedAt time.Time
	Exp      time.Time
}

type TokenSigner interface {
	SignAccessToken(userID, email, role string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
