package models

import "time"

// Role defines the user role
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// UserStatus defines the account status
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

// User defines a platform account based on the 'users' table.
// A suspended user never passes authentication regardless of credentials.
type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	DisplayName  string     `json:"displayName" db:"display_name"`
	Role         Role       `json:"role" db:"role"`
	Status       UserStatus `json:"status" db:"status"`
	PasswordHash string     `json:"-" db:"password_hash"`
	PasswordSalt string     `json:"-" db:"password_salt"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// IsSuspended reports whether the account is suspended.
func (u *User) IsSuspended() bool {
	return u.Status == StatusSuspended
}
