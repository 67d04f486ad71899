package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/avolkov/hrdesk/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
}

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health        HealthHandler
	Auth          AuthHandler
	Employees     EmployeeHandler
	Departments   DepartmentHandler
	Leaves        LeaveHandler
	Announcements AnnouncementHandler

	AuthMW  func(http.Handler) http.Handler
	AdminMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Employees == nil || deps.Departments == nil || deps.Leaves == nil || deps.Announcements == nil {
		return nil, fmt.Errorf("nil HR handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.HTTPLogger)
	r.Use(mw.Metrics)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// --- Auth ---
		r.Post("/auth/signup", deps.Auth.Signup)
		r.Post("/auth/login", deps.Auth.Login)
		r.Post("/auth/verify", deps.Auth.Verify)
		r.With(deps.AuthMW).Get("/me", deps.Auth.Me)

		// --- Employees ---
		r.Route("/employees", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Get("/", deps.Employees.List)
			r.Get("/{id}", deps.Employees.Get)

			r.With(deps.AdminMW).Post("/", deps.Employees.Create)
			r.With(deps.AdminMW).Put("/{id}", deps.Employees.Update)
			r.With(deps.AdminMW).Delete("/{id}", deps.Employees.Delete)
		})

		// --- Departments ---
		r.Route("/departments", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Get("/", deps.Departments.List)
			r.Get("/{id}", deps.Departments.Get)

			r.With(deps.AdminMW).Post("/", deps.Departments.Create)
			r.With(deps.AdminMW).Put("/{id}", deps.Departments.Update)
			r.With(deps.AdminMW).Delete("/{id}", deps.Departments.Delete)
			r.With(deps.AdminMW).Post("/{id}/members", deps.Departments.AddMember)
			r.With(deps.AdminMW).Delete("/{id}/members/{userID}", deps.Departments.RemoveMember)
		})

		// --- Leave requests ---
		r.Route("/leave-requests", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Get("/", deps.Leaves.List)
			r.Post("/", deps.Leaves.Create)

			r.With(deps.AdminMW).Patch("/{id}/approve", deps.Leaves.Approve)
			r.With(deps.AdminMW).Patch("/{id}/reject", deps.Leaves.Reject)
		})

		// --- Announcements ---
		r.Route("/announcements", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Get("/", deps.Announcements.List)
			r.With(deps.AdminMW).Post("/", deps.Announcements.Create)
		})
	})

	return r, nil
}
