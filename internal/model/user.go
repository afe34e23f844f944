package model

import "time"

// Role is the privilege level stored on a user row.
type Role int

const (
	RoleOrdinary Role = 0
	RoleAdmin    Role = 1
)

// User represents a registered member of the marketplace
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Age            int       `json:"age"`
	Height         int       `json:"height"`
	Phone          string    `json:"mobile_phone"`
	PasswordHash   string    `json:"-"` // Do not expose password hash in JSON responses
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Gender         string    `json:"gender"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsAdmin reports whether the stored role is the elevated one.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Identity is what a verified token proves about the caller.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Age      int    `json:"age" binding:"required,gte=18,lte=120"`
	Height   int    `json:"height" binding:"required,gt=0"`
	Phone    string `json:"mobile_phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Gender   string `json:"gender" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Age      int    `json:"age" binding:"required,gte=18,lte=120"`
	Height   int    `json:"height" binding:"required,gt=0"`
	Phone    string `json:"mobile_phone" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}
