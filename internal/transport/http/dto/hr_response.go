package dto

import (
	"time"

	"github.com/avolkov/hrdesk/internal/domain"
)

// -------- Departments --------

type DepartmentView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewDepartmentView(d domain.Department) DepartmentView {
	return DepartmentView{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

type MemberView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DepartmentDetailView struct {
	DepartmentView
	Members []MemberView `json:"members"`
}

func NewDepartmentDetailView(d domain.Department, members []domain.Member) DepartmentDetailView {
	out := DepartmentDetailView{
		DepartmentView: NewDepartmentView(d),
		Members:        make([]MemberView, 0, len(members)),
	}
	for _, m := range members {
		out.Members = append(out.Members, MemberView{ID: m.ID, Name: m.Name, Email: m.Email})
	}
	return out
}

// -------- Leave requests --------

type LeaveRequestView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLeaveRequestView(lr domain.LeaveRequest) LeaveRequestView {
	return LeaveRequestView{
		ID:        lr.ID,
		UserID:    lr.UserID,
		StartDate: lr.StartDate,
		EndDate:   lr.EndDate,
		Reason:    lr.Reason,
		Status:    string(lr.Status),
		CreatedAt: lr.CreatedAt,
		UpdatedAt: lr.UpdatedAt,
	}
}

// -------- Announcements --------

type AnnouncementView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAnnouncementView(a domain.Announcement) AnnouncementView {
	return AnnouncementView{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}

// -------- List helpers --------

func NewUserViews(users []domain.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

func NewDepartmentViews(deps []domain.Department) []DepartmentView {
	out := make([]DepartmentView, 0, len(deps))
	for _, d := range deps {
		out = append(out, NewDepartmentView(d))
	}
	return out
}

func NewLeaveRequestViews(lrs []domain.LeaveRequest) []LeaveRequestView {
	out := make([]LeaveRequestView, 0, len(lrs))
	for _, lr := range lrs {
		out = append(out, NewLeaveRequestView(lr))
	}
	return out
}

func NewAnnouncementViews(as []domain.Announcement) []AnnouncementView {
	out := make([]AnnouncementView, 0, len(as))
	for _, a := range as {
		out = append(out, NewAnnouncementView(a))
	}
	return out
}
