package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Active       bool
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
