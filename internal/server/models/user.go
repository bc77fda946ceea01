package models

import "time"

// User is a registered account. ID is the login identity chosen by the
// user; the password itself is never kept.
type User struct {
	ID        string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
