package domain

import "time"

const (
	RoleAdmin  = "Admin"
	RoleStaff  = "Staff"
	RoleDriver = "Driver"
)

// Permission tokens carried in User.Permissions (comma separated).
const (
	PermView = "view"
	PermEdit = "edit"
	PermAll  = "all"
)

// AllBoats is the sentinel access-list value granting every boat.
const AllBoats = "*"

// User models an authenticated actor. Password holds the at-rest credential
// (bcrypt for rows written by this system, base64 or plaintext for legacy
// rows) and is never serialized.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        string    `json:"role"`
	AccessBoats string    `json:"accessBoats"` // comma-separated boat IDs, or "*"
	Permissions string    `json:"permissions"` // comma-separated tokens, or "all"
	Phone       string    `json:"phone,omitempty"`
	IsActive    bool      `json:"isActive"`
	LastLoginAt time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the administrative role, which
// implicitly grants every permission and every boat.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Sanitized returns a copy safe to hand to clients (no credential).
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Password = ""
	return &clone
}
