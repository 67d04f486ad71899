package hr

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkov/hrdesk/internal/domain"
)

func (s *Service) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.List(ctx)
}

func (s *Service) CreateAnnouncement(ctx context.Context, title, content string) (domain.Announcement, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return domain.Announcement{}, domain.ErrMissingField("title")
	}
	if content == "" {
		return domain.Announcement{}, domain.ErrMissingField("content")
	}

	a := domain.Announcement{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
	}
	return s.announcements.Create(ctx, a)
}
