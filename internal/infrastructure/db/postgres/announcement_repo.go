package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

type AnnouncementRepo struct {
	db *sql.DB
}

func NewAnnouncementRepo(db *sql.DB) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

func (r *AnnouncementRepo) List(ctx context.Context) ([]domain.Announcement, error) {
	const q = `
SELECT id, title, content, created_at
FROM announcements
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		var created time.Time
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &created); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		a.CreatedAt = created
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *AnnouncementRepo) Create(ctx context.Context, in domain.Announcement) (domain.Announcement, error) {
	if in.ID == "" {
		return domain.Announcement{}, domain.ErrMissingField("id")
	}

	const q = `
INSERT INTO announcements (id, title, content)
VALUES ($1,$2,$3)
RETURNING id, title, content, created_at;
`
	var out domain.Announcement
	err := r.db.QueryRowContext(ctx, q, in.ID, in.Title, in.Content).Scan(
		&out.ID, &out.Title, &out.Content, &out.CreatedAt,
	)
	if err != nil {
		return domain.Announcement{}, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
