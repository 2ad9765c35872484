package domain

import "time"

// Role grants access to the government endpoints on the client side only;
// the server stores it at signup and echoes it back at login.
type Role string

const (
	RoleUser       Role = "user"
	RoleGovernment Role = "government"
)

// User is the account record behind signup and login.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
