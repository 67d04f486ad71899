package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

type LeaveRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.LeaveRequest
}

func NewLeaveRepo() *LeaveRepo {
	return &LeaveRepo{byID: make(map[string]domain.LeaveRequest)}
}

func (r *LeaveRepo) List(ctx context.Context, status string) ([]domain.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.LeaveRequest
	for _, lr := range r.byID {
		if status != "" && string(lr.Status) != status {
			continue
		}
		out = append(out, lr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *LeaveRepo) GetByID(ctx context.Context, id string) (domain.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lr, ok := r.byID[id]
	if !ok {
		return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound()
	}
	return lr, nil
}

func (r *LeaveRepo) Create(ctx context.Context, in domain.LeaveRequest) (domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if in.ID == "" {
		return domain.LeaveRequest{}, domain.ErrInternal(nil)
	}
	now := time.Now().UTC()
	if in.CreatedAt.IsZero() {
		in.CreatedAt = now
	}
	in.UpdatedAt = in.CreatedAt

	r.byID[in.ID] = in
	return in, nil
}

func (r *LeaveRepo) SetStatus(ctx context.Context, id string, status domain.LeaveStatus) (domain.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lr, ok := r.byID[id]
	if !ok {
		return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound()
	}
	lr.Status = status
	lr.UpdatedAt = time.Now().UTC()
	r.byID[id] = lr
	return lr, nil
}
