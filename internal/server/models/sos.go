package models

import "time"

// SOSReport records one press of the emergency button.
type SOSReport struct {
	ID        string
	UserID    string
	Email     string
	Message   string
	CreatedAt time.Time
}
