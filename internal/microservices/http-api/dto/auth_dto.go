package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for self-registration; the account always gets role user
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=20,max=60"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,strongpassword"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest: only the fields present are changed
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=20,max=60"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// ChangePasswordRequest: the new password follows the registration rules
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,strongpassword"`
}

// AuthResponse: returned by register and login
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}
