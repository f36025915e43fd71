package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// RegisterRequest represents the sign-up form
type RegisterRequest struct {
	Name            string `form:"name" binding:"required,min=3,max=80"`
	DisplayName     string `form:"displayName" binding:"omitempty,max=40"`
	Email           string `form:"email" binding:"required,email"`
	Phone           string `form:"phone" binding:"omitempty,phone"`
	Password        string `form:"password" binding:"required,min=8,max=72"`
	ConfirmPassword string `form:"confirmPassword" binding:"required,eqfield=Password"`
}
