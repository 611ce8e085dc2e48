package model

import "time"

// Role is the marketplace-wide user role.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User represents a marketplace account, keyed by email.
// Users are created on first sign-in via upsert and never deleted.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Photo        string    `json:"photo,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpsertUserRequest is the payload for PUT /users/:email.
// Role is accepted on first insert only, and the admin role is never
// accepted here: admin accounts come from cmd/create-admin or the
// admin-gated role-grant endpoints.
type UpsertUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Photo    string `json:"photo" binding:"omitempty,url"`
	Role     Role   `json:"role" binding:"omitempty,oneof=student instructor"`
	Password string `json:"password" binding:"omitempty,min=6,max=128"`
}

// IssueTokenRequest is the payload for POST /jwt.
type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueTokenResponse is returned by POST /jwt.
type IssueTokenResponse struct {
	Token string `json:"token"`
}
