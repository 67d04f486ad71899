package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

type LeaveRepo struct {
	db *sql.DB
}

func NewLeaveRepo(db *sql.DB) *LeaveRepo {
	return &LeaveRepo{db: db}
}

type leaveRow struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (lr leaveRow) toDomain() domain.LeaveRequest {
	return domain.LeaveRequest{
		ID:        lr.ID,
		UserID:    lr.UserID,
		StartDate: lr.StartDate,
		EndDate:   lr.EndDate,
		Reason:    lr.Reason,
		Status:    domain.LeaveStatus(lr.Status),
		CreatedAt: lr.CreatedAt,
		UpdatedAt: lr.UpdatedAt,
	}
}

const leaveColumns = `id, user_id, start_date, end_date, reason, status, created_at, updated_at`

func scanLeaveRow(row *sql.Row) (leaveRow, error) {
	var lr leaveRow
	err := row.Scan(
		&lr.ID, &lr.UserID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *LeaveRepo) List(ctx context.Context, status string) ([]domain.LeaveRequest, error) {
	q := `
SELECT ` + leaveColumns + `
FROM leave_requests
ORDER BY created_at DESC;
`
	args := []any{}
	if status != "" {
		q = `
SELECT ` + leaveColumns + `
FROM leave_requests
WHERE status = $1
ORDER BY created_at DESC;
`
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.LeaveRequest
	for rows.Next() {
		var lr leaveRow
		if err := rows.Scan(
			&lr.ID, &lr.UserID, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
		); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, lr.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *LeaveRepo) GetByID(ctx context.Context, id string) (domain.LeaveRequest, error) {
	const q = `
SELECT ` + leaveColumns + `
FROM leave_requests
WHERE id = $1;
`
	lr, err := scanLeaveRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound()
		}
		return domain.LeaveRequest{}, domain.ErrDBUnavailable(err)
	}
	return lr.toDomain(), nil
}

func (r *LeaveRepo) Create(ctx context.Context, in domain.LeaveRequest) (domain.LeaveRequest, error) {
	if in.ID == "" {
		return domain.LeaveRequest{}, domain.ErrMissingField("id")
	}
	if in.UserID == "" {
		return domain.LeaveRequest{}, domain.ErrMissingField("user_id")
	}

	const q = `
INSERT INTO leave_requests (id, user_id, start_date, end_date, reason, status)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING ` + leaveColumns + `;
`
	lr, err := scanLeaveRow(r.db.QueryRowContext(ctx, q,
		in.ID, in.UserID, in.StartDate, in.EndDate, in.Reason, string(in.Status),
	))
	if err != nil {
		return domain.LeaveRequest{}, domain.ErrDBUnavailable(err)
	}
	return lr.toDomain(), nil
}

func (r *LeaveRepo) SetStatus(ctx context.Context, id string, status domain.LeaveStatus) (domain.LeaveRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.LeaveRequest{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE leave_requests
SET status = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING ` + leaveColumns + `;
`
	lr, err := scanLeaveRow(r.db.QueryRowContext(ctx, q, id, string(status)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.LeaveRequest{}, domain.ErrLeaveRequestNotFound()
		}
		return domain.LeaveRequest{}, domain.ErrDBUnavailable(err)
	}
	return lr.toDomain(), nil
}
