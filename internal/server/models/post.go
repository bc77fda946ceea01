package models

import "time"

// Post is a community board entry.
type Post struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
}
