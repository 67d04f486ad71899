package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

type DepartmentRepo struct {
	db *sql.DB
}

func NewDepartmentRepo(db *sql.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

type departmentRow struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

func (dr departmentRow) toDomain() domain.Department {
	return domain.Department(dr)
}

func scanDepartmentRow(row *sql.Row) (departmentRow, error) {
	var dr departmentRow
	err := row.Scan(&dr.ID, &dr.Name, &dr.Description, &dr.CreatedAt)
	return dr, err
}

func (r *DepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	const q = `
SELECT id, name, description, created_at
FROM departments
ORDER BY name;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Department
	for rows.Next() {
		var dr departmentRow
		if err := rows.Scan(&dr.ID, &dr.Name, &dr.Description, &dr.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, dr.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (domain.Department, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Department{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT id, name, description, created_at
FROM departments
WHERE id = $1
LIMIT 1;
`
	dr, err := scanDepartmentRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Department{}, domain.ErrDepartmentNotFound()
		}
		return domain.Department{}, domain.ErrDBUnavailable(err)
	}
	return dr.toDomain(), nil
}

func (r *DepartmentRepo) GetByName(ctx context.Context, name string) (domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Department{}, domain.ErrMissingField("name")
	}

	const q = `
SELECT id, name, description, created_at
FROM departments
WHERE name = $1
LIMIT 1;
`
	dr, err := scanDepartmentRow(r.db.QueryRowContext(ctx, q, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Department{}, domain.ErrDepartmentNotFound()
		}
		return domain.Department{}, domain.ErrDBUnavailable(err)
	}
	return dr.toDomain(), nil
}

func (r *DepartmentRepo) Create(ctx context.Context, d domain.Department) (domain.Department, error) {
	if d.ID == "" {
		return domain.Department{}, domain.ErrMissingField("id")
	}
	if d.Name == "" {
		return domain.Department{}, domain.ErrMissingField("name")
	}

	const q = `
INSERT INTO departments (id, name, description)
VALUES ($1,$2,$3)
RETURNING id, name, description, created_at;
`
	dr, err := scanDepartmentRow(r.db.QueryRowContext(ctx, q, d.ID, d.Name, d.Description))
	if err != nil {
		if isUniqueViolation(err, "departments_name_key") {
			return domain.Department{}, domain.ErrDuplicateDepartment()
		}
		return domain.Department{}, domain.ErrDBUnavailable(err)
	}
	return dr.toDomain(), nil
}

func (r *DepartmentRepo) Update(ctx context.Context, id, name, description string) (domain.Department, error) {
	const q = `
UPDATE departments
SET name = $2, description = $3
WHERE id = $1
RETURNING id, name, description, created_at;
`
	dr, err := scanDepartmentRow(r.db.QueryRowContext(ctx, q, id, name, description))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Department{}, domain.ErrDepartmentNotFound()
		}
		if isUniqueViolation(err, "departments_name_key") {
			return domain.Department{}, domain.ErrDuplicateDepartment()
		}
		return domain.Department{}, domain.ErrDBUnavailable(err)
	}
	return dr.toDomain(), nil
}

// Delete removes the department. The users.department_id foreign key is
// declared ON DELETE SET NULL, so member references clear atomically with
// the delete.
func (r *DepartmentRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM departments WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrDepartmentNotFound()
	}
	return nil
}

func (r *DepartmentRepo) Members(ctx context.Context, departmentID string) ([]domain.Member, error) {
	const q = `
SELECT id, name, email
FROM users
WHERE department_id = $1
ORDER BY name;
`
	rows, err := r.db.QueryContext(ctx, q, departmentID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
