package hr

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkov/hrdesk/internal/domain"
)

type DepartmentDetail struct {
	Department domain.Department
	Members    []domain.Member
}

func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *Service) GetDepartment(ctx context.Context, id string) (DepartmentDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DepartmentDetail{}, domain.ErrMissingField("id")
	}

	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return DepartmentDetail{}, err
	}

	members, err := s.departments.Members(ctx, d.ID)
	if err != nil {
		return DepartmentDetail{}, err
	}

	return DepartmentDetail{Department: d, Members: members}, nil
}

func (s *Service) CreateDepartment(ctx context.Context, name, description string) (domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Department{}, domain.ErrMissingField("name")
	}

	// Pre-check for a friendlier error; the unique constraint on name is
	// still the real guarantee.
	if _, err := s.departments.GetByName(ctx, name); err == nil {
		return domain.Department{}, domain.ErrDuplicateDepartment()
	} else if !domain.Is(err, "department_not_found") {
		return domain.Department{}, err
	}

	d := domain.Department{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	return s.departments.Create(ctx, d)
}

func (s *Service) UpdateDepartment(ctx context.Context, id, name, description string) (domain.Department, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Department{}, domain.ErrMissingField("id")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Department{}, domain.ErrMissingField("name")
	}

	return s.departments.Update(ctx, id, name, strings.TrimSpace(description))
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}
	return s.departments.Delete(ctx, id)
}

func (s *Service) AddMember(ctx context.Context, departmentID, userID string) (DepartmentDetail, error) {
	departmentID = strings.TrimSpace(departmentID)
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return DepartmentDetail{}, domain.ErrMissingField("user_id")
	}

	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		return DepartmentDetail{}, err
	}

	u, err := s.employees.GetByID(ctx, userID)
	if err != nil {
		return DepartmentDetail{}, err
	}
	if u.DepartmentID != nil && *u.DepartmentID == departmentID {
		return DepartmentDetail{}, domain.ErrInvalidField("user_id", "already a member")
	}

	if err := s.employees.SetDepartment(ctx, userID, &departmentID); err != nil {
		return DepartmentDetail{}, err
	}

	return s.GetDepartment(ctx, departmentID)
}

func (s *Service) RemoveMember(ctx context.Context, departmentID, userID string) (DepartmentDetail, error) {
	departmentID = strings.TrimSpace(departmentID)
	userID = strings.TrimSpace(userID)

	if _, err := s.departments.GetByID(ctx, departmentID); err != nil {
		return DepartmentDetail{}, err
	}

	// Clearing an already-clear membership is a no-op, matching the delete
	// semantics of the roster.
	if err := s.employees.SetDepartment(ctx, userID, nil); err != nil && !domain.Is(err, "user_not_found") {
		return DepartmentDetail{}, err
	}

	return s.GetDepartment(ctx, departmentID)
}
