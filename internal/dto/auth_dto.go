package dto

// RegisterRequestDTO is the payload for user registration.
type RegisterRequestDTO struct {
	Username  string `json:"username" binding:"required,min=3,max=64"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfileDTO is the authenticated user's own view of their account.
type UserProfileDTO struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
	XP        int    `json:"xp"`
	Level     int    `json:"level"`
}

type AuthResponseDTO struct {
	Token string         `json:"token"`
	User  UserProfileDTO `json:"user"`
}
