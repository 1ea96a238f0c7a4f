package request

type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type CheckUserRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}
