package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // email -> userID
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrDuplicateEmail()
	}

	// ID should already be set by the service; but be defensive.
	if u.ID == "" {
		return domain.User{}, domain.ErrInternal(nil)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	if !domain.IsValidRole(role) {
		return nil, domain.ErrInvalidRole(role)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.User
	for _, u := range r.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id, name string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.Name = name
	r.byID[id] = u
	return u, nil
}

func (r *UserRepo) SetDepartment(ctx context.Context, id string, departmentID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.DepartmentID = departmentID
	r.byID[id] = u
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}

// ClearDepartment detaches every user referencing the department. The
// postgres schema does this with ON DELETE SET NULL.
func (r *UserRepo) ClearDepartment(ctx context.Context, departmentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.byID {
		if u.DepartmentID != nil && *u.DepartmentID == departmentID {
			u.DepartmentID = nil
			r.byID[id] = u
		}
	}
}

// MembersOf lists users attached to the department.
func (r *UserRepo) MembersOf(ctx context.Context, departmentID string) []domain.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Member
	for _, u := range r.byID {
		if u.DepartmentID != nil && *u.DepartmentID == departmentID {
			out = append(out, domain.Member{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	return out
}
