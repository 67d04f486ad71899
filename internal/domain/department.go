package domain

import "time"

type Department struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Member is the user view exposed when listing a department's members.
type Member struct {
	ID    string
	Name  string
	Email string
}
