package auth

import "github.com/gambo-stadium/gambo-api/internal/user"

type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// AuthResponse carries the signed bearer token and the public user record.
type AuthResponse struct {
	Token string            `json:"token"`
	User  user.UserResponse `json:"user"`
}
