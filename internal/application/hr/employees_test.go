package hr

import (
	"context"
	"testing"

	"github.com/avolkov/hrdesk/internal/domain"
)

func TestListEmployees_FiltersOutAdmins(t *testing.T) {
	t.Parallel()

	svc, employees, _, _, _, _ := newSvcForTest(t)
	employees.byID["u1"] = domain.User{ID: "u1", Role: "user"}
	employees.byID["a1"] = domain.User{ID: "a1", Role: "admin"}

	got, err := svc.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("expected only u1, got %+v", got)
	}
}

func TestGetEmployee_AdminAccount_IsNotFound(t *testing.T) {
	t.Parallel()

	svc, employees, _, _, _, _ := newSvcForTest(t)
	employees.byID["a1"] = domain.User{ID: "a1", Role: "admin"}

	_, err := svc.GetEmployee(context.Background(), "a1")
	requireDomainCode(t, err, "employee_not_found")

	_, err = svc.GetEmployee(context.Background(), "ghost")
	requireDomainCode(t, err, "employee_not_found")
}

func TestCreateEmployee_DelegatesToRegistrar_ForcesUserRole(t *testing.T) {
	t.Parallel()

	svc, _, registrar, _, _, _ := newSvcForTest(t)

	u, err := svc.CreateEmployee(context.Background(), "Carol", "carol@x.com", "pw")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if u.Role != "user" {
		t.Fatalf("expected user role, got %q", u.Role)
	}
	if len(registrar.calls) != 1 || registrar.calls[0].role != "user" {
		t.Fatalf("expected registrar called with role user, got %+v", registrar.calls)
	}
}

func TestCreateEmployee_DuplicateEmail_Propagates(t *testing.T) {
	t.Parallel()

	svc, _, registrar, _, _, _ := newSvcForTest(t)
	registrar.err = domain.ErrDuplicateEmail()

	_, err := svc.CreateEmployee(context.Background(), "Carol", "carol@x.com", "pw")
	requireDomainCode(t, err, "duplicate_email")
}

func TestUpdateEmployee_RenamesOnly(t *testing.T) {
	t.Parallel()

	svc, employees, _, _, _, _ := newSvcForTest(t)
	employees.byID["u1"] = domain.User{ID: "u1", Name: "Old", Role: "user"}

	u, err := svc.UpdateEmployee(context.Background(), "u1", "  New  ")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if u.Name != "New" {
		t.Fatalf("expected trimmed rename, got %q", u.Name)
	}

	_, err = svc.UpdateEmployee(context.Background(), "u1", "   ")
	requireDomainCode(t, err, "missing_field")
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	svc, employees, _, _, _, _ := newSvcForTest(t)
	employees.byID["u1"] = domain.User{ID: "u1", Role: "user"}

	if err := svc.DeleteEmployee(context.Background(), "u1"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if _, ok := employees.byID["u1"]; ok {
		t.Fatalf("expected u1 removed")
	}

	err := svc.DeleteEmployee(context.Background(), "u1")
	requireDomainCode(t, err, "employee_not_found")
}
