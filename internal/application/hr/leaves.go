package hr

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/hrdesk/internal/domain"
)

func (s *Service) ListLeaveRequests(ctx context.Context, status string) ([]domain.LeaveRequest, error) {
	status = strings.TrimSpace(status)
	if status != "" && !domain.IsValidLeaveStatus(status) {
		return nil, domain.ErrInvalidField("status", "must be pending, approved or rejected")
	}
	return s.leaves.List(ctx, status)
}

// CreateLeaveRequest files a request for the authenticated user. The userID
// comes from the verified identity, never from the request body.
func (s *Service) CreateLeaveRequest(ctx context.Context, userID string, start, end time.Time, reason string) (domain.LeaveRequest, error) {
	userID = strings.TrimSpace(userID)
	reason = strings.TrimSpace(reason)

	if userID == "" {
		return domain.LeaveRequest{}, domain.ErrMissingField("user_id")
	}
	if start.IsZero() {
		return domain.LeaveRequest{}, domain.ErrMissingField("start_date")
	}
	if end.IsZero() {
		return domain.LeaveRequest{}, domain.ErrMissingField("end_date")
	}
	if reason == "" {
		return domain.LeaveRequest{}, domain.ErrMissingField("reason")
	}
	if end.Before(start) {
		return domain.LeaveRequest{}, domain.ErrInvalidField("end_date", "before start_date")
	}

	lr := domain.LeaveRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Status:    domain.LeavePending,
	}
	return s.leaves.Create(ctx, lr)
}

func (s *Service) ApproveLeaveRequest(ctx context.Context, id string) (domain.LeaveRequest, error) {
	return s.setLeaveStatus(ctx, id, domain.LeaveApproved)
}

func (s *Service) RejectLeaveRequest(ctx context.Context, id string) (domain.LeaveRequest, error) {
	return s.setLeaveStatus(ctx, id, domain.LeaveRejected)
}

// setLeaveStatus moves a request out of pending. Approved and rejected are
// terminal; a second decision fails instead of silently flipping the record.
func (s *Service) setLeaveStatus(ctx context.Context, id string, status domain.LeaveStatus) (domain.LeaveRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.LeaveRequest{}, domain.ErrMissingField("id")
	}

	cur, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return domain.LeaveRequest{}, err
	}
	if cur.Status != domain.LeavePending {
		return domain.LeaveRequest{}, domain.ErrInvalidField("status", "already "+string(cur.Status))
	}

	return s.leaves.SetStatus(ctx, id, status)
}
