package models

import "time"

// ChatGroup is one of the fixed chat rooms.
type ChatGroup struct {
	ID   string
	Name string
}

// ChatMessage belongs to exactly one group.
type ChatMessage struct {
	ID        string
	GroupID   string
	UserID    string
	Text      string
	CreatedAt time.Time
}
