package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkov/hrdesk/internal/application/hr"
	"github.com/avolkov/hrdesk/internal/domain"
	"github.com/avolkov/hrdesk/internal/transport/http/dto"
	"github.com/avolkov/hrdesk/internal/transport/http/middleware"
	"github.com/avolkov/hrdesk/internal/transport/http/response"
)

type LeaveHandler struct {
	svc *hr.Service
}

func NewLeaveHandler(svc *hr.Service) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	lrs, err := h.svc.ListLeaveRequests(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewLeaveRequestViews(lrs))
}

// Create files a leave request for the authenticated caller. The requester
// identity always comes from the verified token, never from the body.
func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	var req dto.CreateLeaveRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}
	start, end, err := req.Dates()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	lr, err := h.svc.CreateLeaveRequest(r.Context(), uid, start, end, req.Reason)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.NewLeaveRequestView(lr))
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	lr, err := h.svc.ApproveLeaveRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewLeaveRequestView(lr))
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	lr, err := h.svc.RejectLeaveRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewLeaveRequestView(lr))
}
