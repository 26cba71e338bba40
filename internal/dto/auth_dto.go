package dto

type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SendOTPResponse struct {
	Message string `json:"message"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type VerifyOTPResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type LoginRequest struct {
	Name string `json:"name" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

type LogoutRequest struct {
	Name string `json:"name" validate:"required"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
