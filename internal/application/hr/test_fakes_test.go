package hr

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/hrdesk/internal/application/auth"
	"github.com/avolkov/hrdesk/internal/domain"
)

type fakeEmployeeRepo struct {
	mu   sync.Mutex
	byID map[string]domain.User

	listErr   error
	getErr    error
	setDepErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]domain.User{}}
}

func (f *fakeEmployeeRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.User
	for _, u := range f.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.User{}, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeEmployeeRepo) UpdateProfile(ctx context.Context, id, name string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	u.Name = name
	f.byID[id] = u
	return u, nil
}

func (f *fakeEmployeeRepo) SetDepartment(ctx context.Context, id string, departmentID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setDepErr != nil {
		return f.setDepErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.DepartmentID = departmentID
	f.byID[id] = u
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byID[id]; !ok {
		return domain.ErrUserNotFound()
	}
	delete(f.byID, id)
	return nil
}

type fakeRegistrar struct {
	err   error
	calls []struct{ name, email, role string }
}

func (f *fakeRegistrar) Signup(ctx context.Context, name, email, password, role string) (auth.SignupResult, error) {
	f.calls = append(f.calls, struct{ name, email, role string }{name, email, role})
	if f.err != nil {
		return auth.SignupResult{}, f.err
	}
	return auth.SignupResult{
		User: domain.User{ID: uuid.NewString(), Name: name, Email: email, Role: role, PasswordHash: "hash"},
	}, nil
}

type fakeDepartmentRepo struct {
	mu     sync.Mutex
	byID   map[string]domain.Department
	byName map[string]string // name -> id

	members map[string][]domain.Member
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		byID:    map[string]domain.Department{},
		byName:  map[string]string{},
		members: map[string][]domain.Member{},
	}
}

func (f *fakeDepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Department
	for _, d := range f.byID {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.byID[id]
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound()
	}
	return d, nil
}

func (f *fakeDepartmentRepo) GetByName(ctx context.Context, name string) (domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := f.byName[name]
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound()
	}
	return f.byID[id], nil
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, d domain.Department) (domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byName[d.Name]; exists {
		return domain.Department{}, domain.ErrDuplicateDepartment()
	}
	f.byID[d.ID] = d
	f.byName[d.Name] = d.ID
	return d, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, id, name, description string) (domain.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.byID[id]
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound()
	}
	delete(f.byName, d.Name)
	d.Name = name
	d.Description = description
	f.byID[id] = d
	f.byName[name] = id
	return d, nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	d, ok := f.byID[id]
	if !ok {
		return domain.ErrDepartmentNotFound()
	}
	delete(f.byName, d.Name)
	delete(f.byID, id)
	return nil
}

func (f *fakeDepartmentRepo) Members(ctx context.Context, departmentID string) ([]domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.members[departmentID], nil
}

type fakeLeaveRepo struct {
	mu   sync.Mutex
	byID map[string]domain.LeaveRequest

	createErr error
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{byID: map[string]domain.LeaveRequest{}}
}

func (f *fakeLeaveRepo) List(ctx context.Context, status string) ([]domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.LeaveRequest
	for _, lr := range f.byID {
		if status == "" || string(lr.Status) == status {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lr, ok := f.byID[id]
	if !ok {
		return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound()
	}
	return lr, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, lr domain.LeaveRequest) (domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.LeaveRequest{}, f.createErr
	}
	lr.CreatedAt = time.Now()
	f.byID[lr.ID] = lr
	return lr, nil
}

func (f *fakeLeaveRepo) SetStatus(ctx context.Context, id string, status domain.LeaveStatus) (domain.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	lr, ok := f.byID[id]
	if !ok {
		return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound()
	}
	lr.Status = status
	f.byID[id] = lr
	return lr, nil
}

type fakeAnnouncementRepo struct {
	mu  sync.Mutex
	all []domain.Announcement
}

func (f *fakeAnnouncementRepo) List(ctx context.Context) ([]domain.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Announcement(nil), f.all...), nil
}

func (f *fakeAnnouncementRepo) Create(ctx context.Context, a domain.Announcement) (domain.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.CreatedAt = time.Now()
	f.all = append(f.all, a)
	return a, nil
}

/*
Shared helpers
*/

func newSvcForTest(t *testing.T) (*Service, *fakeEmployeeRepo, *fakeRegistrar, *fakeDepartmentRepo, *fakeLeaveRepo, *fakeAnnouncementRepo) {
	t.Helper()

	employees := newFakeEmployeeRepo()
	registrar := &fakeRegistrar{}
	departments := newFakeDepartmentRepo()
	leaves := newFakeLeaveRepo()
	ann := &fakeAnnouncementRepo{}

	svc := NewService(employees, registrar, departments, leaves, ann)
	return svc, employees, registrar, departments, leaves, ann
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()

	if !domain.Is(err, code) {
		t.Fatalf("expected domain code %q, got %v", code, err)
	}
}
