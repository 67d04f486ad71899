package hr

import (
	"context"

	"github.com/avolkov/hrdesk/internal/application/auth"
	"github.com/avolkov/hrdesk/internal/domain"
)

/*
EmployeeRepo
------------
User persistence as seen by the HR surface. Backed by the same users table
as the auth core.
*/
type EmployeeRepo interface {
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, id, name string) (domain.User, error)
	SetDepartment(ctx context.Context, id string, departmentID *string) error
	Delete(ctx context.Context, id string) error
}

/*
Registrar
---------
Account creation is delegated to the auth core so credentials are hashed
exactly once, at the point they are first accepted.
*/
type Registrar interface {
	Signup(ctx context.Context, name, email, password, role string) (auth.SignupResult, error)
}

type DepartmentRepo interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id string) (domain.Department, error)
	GetByName(ctx context.Context, name string) (domain.Department, error)
	Create(ctx context.Context, d domain.Department) (domain.Department, error)
	Update(ctx context.Context, id, name, description string) (domain.Department, error)
	// Delete removes the department; clearing user references is the
	// storage layer's job so it happens atomically with the delete.
	Delete(ctx context.Context, id string) error
	Members(ctx context.Context, departmentID string) ([]domain.Member, error)
}

type LeaveRepo interface {
	List(ctx context.Context, status string) ([]domain.LeaveRequest, error)
	GetByID(ctx context.Context, id string) (domain.LeaveRequest, error)
	Create(ctx context.Context, lr domain.LeaveRequest) (domain.LeaveRequest, error)
	SetStatus(ctx context.Context, id string, status domain.LeaveStatus) (domain.LeaveRequest, error)
}

type AnnouncementRepo interface {
	List(ctx context.Context) ([]domain.Announcement, error)
	Create(ctx context.Context, a domain.Announcement) (domain.Announcement, error)
}
