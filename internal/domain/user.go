package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	// DepartmentID is a weak reference; nil means unassigned.
	DepartmentID *string
	CreatedAt    time.Time
}
