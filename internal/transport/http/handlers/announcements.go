package http_handlers

import (
	"net/http"

	"github.com/avolkov/hrdesk/internal/application/hr"
	"github.com/avolkov/hrdesk/internal/transport/http/dto"
	"github.com/avolkov/hrdesk/internal/transport/http/response"
)

type AnnouncementHandler struct {
	svc *hr.Service
}

func NewAnnouncementHandler(svc *hr.Service) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListAnnouncements(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewAnnouncementViews(as))
}

func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAnnouncementRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	a, err := h.svc.CreateAnnouncement(r.Context(), req.Title, req.Content)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.NewAnnouncementView(a))
}
