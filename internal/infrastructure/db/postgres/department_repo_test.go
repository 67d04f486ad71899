package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/hrdesk/internal/domain"
)

func setupDepartmentRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *DepartmentRepo) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create mock database")

	return db, mock, NewDepartmentRepo(db)
}

func departmentColumns() []string {
	return []string{"id", "name", "description", "created_at"}
}

func TestDepartmentRepo_Create_Success(t *testing.T) {
	db, mock, repo := setupDepartmentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO departments").
		WithArgs("d1", "Engineering", "builds things").
		WillReturnRows(sqlmock.NewRows(departmentColumns()).
			AddRow("d1", "Engineering", "builds things", time.Now()))

	got, err := repo.Create(context.Background(), domain.Department{
		ID: "d1", Name: "Engineering", Description: "builds things",
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineering", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepo_Create_DuplicateName(t *testing.T) {
	db, mock, repo := setupDepartmentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO departments").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "departments_name_key"})

	_, err := repo.Create(context.Background(), domain.Department{ID: "d2", Name: "Engineering"})
	assert.True(t, domain.Is(err, "duplicate_department"), "got %v", err)
}

func TestDepartmentRepo_GetByID_NotFound(t *testing.T) {
	db, mock, repo := setupDepartmentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM departments").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.True(t, domain.Is(err, "department_not_found"), "got %v", err)
}

func TestDepartmentRepo_Update_DuplicateName(t *testing.T) {
	db, mock, repo := setupDepartmentRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE departments").
		WithArgs("d1", "Sales", "sells things").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "departments_name_key"})

	_, err := repo.Update(context.Background(), "d1", "Sales", "sells things")
	assert.True(t, domain.Is(err, "duplicate_department"), "got %v", err)
}

func TestDepartmentRepo_Delete_NotFound(t *testing.T) {
	db, mock, repo := setupDepartmentRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM departments").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	assert.True(t, domain.Is(err, "department_not_found"), "got %v", err)
}

func TestDepartmentRepo_Members(t *testing.T) {
	db, mock, repo := setupDepartmentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow("u1", "Alice", "a@x.com").
		AddRow("u2", "Bob", "b@x.com")

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("d1").
		WillReturnRows(rows)

	got, err := repo.Members(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name)
}

func TestDepartmentRepo_List(t *testing.T) {
	db, mock, repo := setupDepartmentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(departmentColumns()).
		AddRow("d1", "Engineering", "", time.Now()).
		AddRow("d2", "Sales", "", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM departments").WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
