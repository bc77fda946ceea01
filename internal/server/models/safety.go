package models

import "time"

// SupportRequest is a plea for help. Requests are append-only.
type SupportRequest struct {
	ID        string
	UserID    string
	Email     string
	Category  string
	Priority  string
	Details   string
	CreatedAt time.Time
}

// SafetyStatus is the latest safety report of one user.
type SafetyStatus struct {
	UserID     string
	Email      string
	Status     string
	ReportedAt time.Time
}
