package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

// DepartmentRepo keeps departments in memory. Member lookups and the
// detach-on-delete behavior are delegated to the UserRepo, mirroring how
// the postgres schema ties the two tables with a foreign key.
type DepartmentRepo struct {
	mu     sync.RWMutex
	byID   map[string]domain.Department
	byName map[string]string // name -> departmentID

	users *UserRepo
}

func NewDepartmentRepo(users *UserRepo) *DepartmentRepo {
	return &DepartmentRepo{
		byID:   make(map[string]domain.Department),
		byName: make(map[string]string),
		users:  users,
	}
}

func (r *DepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Department, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound()
	}
	return d, nil
}

func (r *DepartmentRepo) GetByName(ctx context.Context, name string) (domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound()
	}
	return r.byID[id], nil
}

func (r *DepartmentRepo) Create(ctx context.Context, d domain.Department) (domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[d.Name]; exists {
		return domain.Department{}, domain.ErrDuplicateDepartment()
	}
	if d.ID == "" {
		return domain.Department{}, domain.ErrInternal(nil)
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	r.byID[d.ID] = d
	r.byName[d.Name] = d.ID
	return d, nil
}

func (r *DepartmentRepo) Update(ctx context.Context, id, name, description string) (domain.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return domain.Department{}, domain.ErrDepartmentNotFound()
	}
	if other, exists := r.byName[name]; exists && other != id {
		return domain.Department{}, domain.ErrDuplicateDepartment()
	}

	delete(r.byName, d.Name)
	d.Name = name
	d.Description = description
	r.byID[id] = d
	r.byName[name] = id
	return d, nil
}

func (r *DepartmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	d, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return domain.ErrDepartmentNotFound()
	}
	delete(r.byID, id)
	delete(r.byName, d.Name)
	r.mu.Unlock()

	if r.users != nil {
		r.users.ClearDepartment(ctx, id)
	}
	return nil
}

func (r *DepartmentRepo) Members(ctx context.Context, departmentID string) ([]domain.Member, error) {
	if r.users == nil {
		return nil, nil
	}
	members := r.users.MembersOf(ctx, departmentID)
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members, nil
}
