package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/hrdesk/internal/application/auth"
	"github.com/avolkov/hrdesk/internal/domain"
)

// BcryptHasher implements auth.PasswordHasher. The salt is generated per
// password and embedded in the hash; comparison is constant-time inside
// bcrypt itself.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns nil on match and auth.ErrPasswordMismatch on a wrong
// password. Any other error means the stored hash is unreadable.
func (h *BcryptHasher) Compare(hash string, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return auth.ErrPasswordMismatch
	}
	return err
}
