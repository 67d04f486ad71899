package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/hrdesk/internal/application/hr"
	"github.com/avolkov/hrdesk/internal/logger"
	"github.com/avolkov/hrdesk/internal/transport/http/dto"
	"github.com/avolkov/hrdesk/internal/transport/http/response"
)

type EmployeeHandler struct {
	svc *hr.Service
}

func NewEmployeeHandler(svc *hr.Service) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.ListEmployees(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserViews(employees))
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserView(u))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.CreateEmployee(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("employee_id", u.ID).
		Msg("employee_created")

	response.Created(w, dto.NewUserView(u))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateEmployeeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.UpdateEmployee(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewUserView(u))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("employee_id", id).
		Msg("employee_deleted")

	response.NoContent(w)
}
