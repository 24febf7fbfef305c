package service

import (
	"context"
	"errors"
	"strings"

	"storerating/internal/apperror"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/repository"
	"storerating/internal/middleware/auth"
)

// UserService is the admin user-management surface. Callers are expected to
// have passed the admin route guard.
type UserService interface {
	List(ctx context.Context, params repository.ListParams) (*dto.UserListResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id int64) (*dto.UserResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, params repository.ListParams) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, apperror.Internal(err, "list users")
	}
	return &dto.UserListResponse{
		Users:      dto.FromUsers(users),
		Pagination: dto.NewPagination("Users", total, params.Page, params.Limit),
	}, nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err, "hash password")
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: hashed,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.Conflict(msgEmailExists)
		}
		return nil, apperror.Internal(err, "create user")
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, apperror.Internal(err, "load user")
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// Update applies a role change immediately; the next request by that user sees it.
func (s *userService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	update := repository.UserUpdate{Name: req.Name, Role: req.Role}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		update.Email = &email
	}
	if update.Empty() {
		return nil, apperror.Validation(msgNoUpdates)
	}

	if update.Email != nil {
		taken, err := s.userRepo.EmailTaken(ctx, *update.Email, id)
		if err != nil {
			return nil, apperror.Internal(err, "check email")
		}
		if taken {
			return nil, apperror.Conflict(msgEmailTaken)
		}
	}

	user, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound(msgUserNotFound)
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperror.Conflict(msgEmailTaken)
		}
		return nil, apperror.Internal(err, "update user")
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(msgUserNotFound)
		}
		return apperror.Internal(err, "delete user")
	}
	return nil
}
