package domain

import "time"

type Announcement struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}
