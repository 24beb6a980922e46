package models

import (
	"time"
)

// Role is the access level of a user account
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleAuthor Role = "AUTHOR"
	RoleUser   Role = "USER"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAuthor, RoleUser:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Mykola Kolomoyets"`
	Email     string    `json:"email" db:"email" example:"user@lpnu.ua"`
	Password  string    `json:"-" db:"password"` // Hashed password, excluded from JSON
	Image     *string   `json:"image,omitempty" db:"image"`
	Role      Role      `json:"role" db:"role" example:"AUTHOR"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Session identifies the authenticated caller of a procedure. It is resolved
// from the bearer token on every request and passed explicitly into services.
type Session struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the session belongs to an administrator
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
