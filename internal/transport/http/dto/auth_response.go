package dto

import (
	"github.com/avolkov/hrdesk/internal/domain"
)

// UserView is the standard user payload. The password hash never leaves
// the server.
type UserView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DepartmentID *string `json:"department_id,omitempty"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
	}
}

// TokensView is the standard access token payload.
type TokensView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// AuthData is returned by signup/login.
type AuthData struct {
	User   UserView   `json:"user"`
	Tokens TokensView `json:"tokens"`
}

// VerifyData is returned by /auth/verify.
type VerifyData struct {
	Valid bool     `json:"valid"`
	User  UserView `json:"user"`
}

// MeData is returned by /me.
type MeData struct {
	User UserView `json:"user"`
}
