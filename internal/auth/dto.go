package auth

import (
	"github.com/kwojtas/vanstock-backend/internal/users"
)

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token and user produced by a successful login.
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	User        *users.UserDTO `json:"user"`
}

// RegisterRequest contains the payload required for onboarding a technician.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	CarPlate string `json:"car_plate" validate:"required"`
}

// ActivateRequest toggles a user's access to the API.
type ActivateRequest struct {
	IsActive bool `json:"is_active"`
}
