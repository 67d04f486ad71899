package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/hrdesk/internal/application/hr"
	"github.com/avolkov/hrdesk/internal/transport/http/dto"
	"github.com/avolkov/hrdesk/internal/transport/http/response"
)

type DepartmentHandler struct {
	svc *hr.Service
}

func NewDepartmentHandler(svc *hr.Service) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	deps, err := h.svc.ListDepartments(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewDepartmentViews(deps))
}

func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewDepartmentDetailView(detail.Department, detail.Members))
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	d, err := h.svc.CreateDepartment(r.Context(), req.Name, req.Description)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.NewDepartmentView(d))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDepartmentRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	d, err := h.svc.UpdateDepartment(r.Context(), chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewDepartmentView(d))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}

func (h *DepartmentHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMemberRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	detail, err := h.svc.AddMember(r.Context(), chi.URLParam(r, "id"), req.UserID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewDepartmentDetailView(detail.Department, detail.Members))
}

func (h *DepartmentHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.RemoveMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewDepartmentDetailView(detail.Department, detail.Members))
}
