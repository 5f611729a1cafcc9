// Package dto defines the request and response shapes exchanged with the
// HTTP surface. Validation tags drive the request validator; services
// only ever see structs that already passed it.
package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=worker employer admin"`

	// Role-specific profile seed fields, all optional.
	FullName     string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Skills       string `json:"skills,omitempty" validate:"omitempty,max=1000"`
	CompanyName  string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	EmployerName string `json:"employer_name,omitempty" validate:"omitempty,max=200"`
	AdminName    string `json:"admin_name,omitempty" validate:"omitempty,max=200"`
	Department   string `json:"department,omitempty" validate:"omitempty,max=200"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	Role         string `json:"role"`
	UserID       string `json:"user_id"`
}
