package dto

import (
	"github.com/avolkov/hrdesk/internal/domain"
)

// -------- Core auth --------

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty"`
}

func (r *SignupRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.Role != "" && !domain.IsValidRole(r.Role) {
		return domain.ErrInvalidRole(r.Role)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

// VerifyRequest carries a token in the body for clients that cannot set
// an Authorization header. The header form is preferred.
type VerifyRequest struct {
	Token string `json:"token,omitempty"`
}
