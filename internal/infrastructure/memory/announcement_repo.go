package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

type AnnouncementRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.Announcement
}

func NewAnnouncementRepo() *AnnouncementRepo {
	return &AnnouncementRepo{byID: make(map[string]domain.Announcement)}
}

func (r *AnnouncementRepo) List(ctx context.Context) ([]domain.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Announcement, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *AnnouncementRepo) Create(ctx context.Context, in domain.Announcement) (domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if in.ID == "" {
		return domain.Announcement{}, domain.ErrInternal(nil)
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}

	r.byID[in.ID] = in
	return in, nil
}
