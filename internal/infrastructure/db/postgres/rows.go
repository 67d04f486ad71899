package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avolkov/hrdesk/internal/domain"
)

type userRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	DepartmentID *string
	CreatedAt    time.Time
}

func (ur userRow) toDomain() domain.User {
	return domain.User{
		ID:           ur.ID,
		Name:         ur.Name,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		Role:         ur.Role,
		DepartmentID: ur.DepartmentID,
		CreatedAt:    ur.CreatedAt,
	}
}

// isUniqueViolation reports whether err is a violation of the named unique
// constraint. The constraint, not any pre-check, is what guarantees
// uniqueness under concurrent inserts.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
