package hr

import (
	"context"
	"strings"

	"github.com/avolkov/hrdesk/internal/domain"
)

// Employees are accounts with the regular user role; admin accounts are not
// part of the roster.

func (s *Service) ListEmployees(ctx context.Context) ([]domain.User, error) {
	return s.employees.ListByRole(ctx, string(domain.RoleUser))
}

func (s *Service) GetEmployee(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	u, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return domain.User{}, domain.ErrEmployeeNotFound()
		}
		return domain.User{}, err
	}
	if u.Role != string(domain.RoleUser) {
		return domain.User{}, domain.ErrEmployeeNotFound()
	}
	return u, nil
}

func (s *Service) CreateEmployee(ctx context.Context, name, email, password string) (domain.User, error) {
	res, err := s.registrar.Signup(ctx, name, email, password, string(domain.RoleUser))
	if err != nil {
		return domain.User{}, err
	}
	return res.User, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id, name string) (domain.User, error) {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return domain.User{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, domain.ErrMissingField("name")
	}

	return s.employees.UpdateProfile(ctx, id, name)
}

func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}
	return s.employees.Delete(ctx, id)
}
