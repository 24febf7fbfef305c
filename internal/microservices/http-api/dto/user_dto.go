package dto

import (
	"time"

	"storerating/internal/microservices/http-api/models"
)

// CreateUserRequest is the admin-side create; role defaults to user.
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required,min=20,max=60"`
	Email    string      `json:"email" binding:"required,email,max=255"`
	Password string      `json:"password" binding:"required,strongpassword"`
	Role     models.Role `json:"role" binding:"omitempty,oneof=admin store_owner user"`
}

type UpdateUserRequest struct {
	Name  *string      `json:"name" binding:"omitempty,min=20,max=60"`
	Email *string      `json:"email" binding:"omitempty,email,max=255"`
	Role  *models.Role `json:"role" binding:"omitempty,oneof=admin store_owner user"`
}

type UserResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func FromUser(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUsers(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}

type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}
