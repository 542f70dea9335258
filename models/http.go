package models

// PhoneRequest is the body of phone/register.
type PhoneRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`
}

// VerificationRequest is the body of phone/verify and phone/bind.
type VerificationRequest struct {
	PhoneNumber  string `json:"phone_number" validate:"required,max=32"`
	SecurityCode string `json:"security_code" validate:"required,numeric"`
	SessionToken string `json:"session_token" validate:"required"`
}

// SignupRequest is the body of phone/signup.
type SignupRequest struct {
	VerificationRequest

	Username string `json:"username" validate:"required,max=150,username"`
	Password string `json:"password" validate:"required,max=128"`
}

// TokenObtainRequest is the body of token/. User may be a username, an email
// or a phone number.
type TokenObtainRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenRefreshRequest is the body of token/refresh/.
type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// ConvertTokenRequest is the body of social/convert_token/.
type ConvertTokenRequest struct {
	Provider string `json:"provider" validate:"required"`
	Token    string `json:"token" validate:"required"`
}
