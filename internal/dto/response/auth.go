package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type AuthResponse struct {
	UserID      string          `json:"user_id"`
	PhoneNumber string          `json:"phone_number"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        entity.UserRole `json:"role"`
	Token       string          `json:"token,omitempty"`
	ExpiresAt   time.Time       `json:"expires_at,omitzero"`
}

type CheckUserResponse struct {
	Exists bool    `json:"exists"`
	UserID *string `json:"user_id"`
}
