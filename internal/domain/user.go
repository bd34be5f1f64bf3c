package domain

import "time"

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid returns true if the role is one of the known roles
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered user.
// PasswordHash is the bcrypt hash of the password and never leaves the service.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRole

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
