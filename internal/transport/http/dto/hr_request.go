package dto

import (
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

// -------- Employees --------

type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validateStruct(r)
}

type UpdateEmployeeRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validateStruct(r)
}

// -------- Departments --------

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	return validateStruct(r)
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	return validateStruct(r)
}

type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (r *AddMemberRequest) Validate() error {
	return validateStruct(r)
}

// -------- Leave requests --------

type CreateLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	return validateStruct(r)
}

// Dates parses the request dates. Accepts YYYY-MM-DD or RFC 3339.
func (r *CreateLeaveRequest) Dates() (start, end time.Time, err error) {
	start, err = parseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidField("start_date", "invalid date")
	}
	end, err = parseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidField("end_date", "invalid date")
	}
	return start, end, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// -------- Announcements --------

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	return validateStruct(r)
}
