package domain

import "time"

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

func IsValidLeaveStatus(s string) bool {
	return s == string(LeavePending) || s == string(LeaveApproved) || s == string(LeaveRejected)
}

type LeaveRequest struct {
	ID        string
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    LeaveStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
