package dto

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Token   string     `json:"token,omitempty"`
	User    *UserClaim `json:"user,omitempty"`
}

type UserClaim struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
