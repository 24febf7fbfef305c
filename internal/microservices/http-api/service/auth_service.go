package service

import (
	"context"
	"errors"
	"strings"

	"storerating/internal/apperror"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/models"
	"storerating/internal/microservices/http-api/policy"
	"storerating/internal/microservices/http-api/repository"
	"storerating/internal/middleware/auth"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid or expired token"
	msgEmailExists        = "User with this email already exists"
	msgEmailTaken         = "Email is already taken"
	msgNoUpdates          = "No updates provided"
	msgUserNotFound       = "User not found"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	// Authenticate turns a bearer token into a principal whose role is read fresh from the users table.
	Authenticate(ctx context.Context, token string) (policy.Principal, error)
	Profile(ctx context.Context, p policy.Principal) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, p policy.Principal, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, p policy.Principal, req dto.ChangePasswordRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenIssuer) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user-role account and signs it in.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict(msgEmailExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.Internal(err, "lookup email")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err, "hash password")
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with another registration for the same email
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.Conflict(msgEmailExists)
		}
		return nil, apperror.Internal(err, "create user")
	}

	return s.signIn(user, "User registered successfully")
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// keep the unknown-email path as slow as a wrong password
			auth.BurnCompare(req.Password)
			return nil, apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, apperror.Internal(err, "lookup user")
	}

	if err := auth.VerifyPassword(user.Password, req.Password); err != nil {
		return nil, apperror.Unauthorized(msgInvalidCredentials)
	}

	return s.signIn(user, "Login successful")
}

func (s *authService) signIn(user *models.User, message string) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, apperror.Internal(err, "issue token")
	}
	return &dto.AuthResponse{Message: message, User: dto.FromUser(user), Token: token}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (policy.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return policy.Principal{}, apperror.Wrap(apperror.CodeUnauthorized, err, msgInvalidToken)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return policy.Principal{}, apperror.Unauthorized(msgInvalidToken)
		}
		return policy.Principal{}, apperror.Internal(err, "load principal")
	}

	return policy.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

func (s *authService) Profile(ctx context.Context, p policy.Principal) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, apperror.Internal(err, "load profile")
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, p policy.Principal, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	update := repository.UserUpdate{Name: req.Name}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		update.Email = &email
	}
	if update.Empty() {
		return nil, apperror.Validation(msgNoUpdates)
	}

	if update.Email != nil {
		taken, err := s.userRepo.EmailTaken(ctx, *update.Email, p.UserID)
		if err != nil {
			return nil, apperror.Internal(err, "check email")
		}
		if taken {
			return nil, apperror.Conflict(msgEmailTaken)
		}
	}

	user, err := s.userRepo.Update(ctx, p.UserID, update)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperror.Conflict(msgEmailTaken)
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, apperror.Internal(err, "update profile")
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, p policy.Principal, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(msgUserNotFound)
		}
		return apperror.Internal(err, "load user")
	}

	if err := auth.VerifyPassword(user.Password, req.CurrentPassword); err != nil {
		return apperror.Validation("Current password is incorrect")
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperror.Internal(err, "hash password")
	}
	if err := s.userRepo.UpdatePassword(ctx, p.UserID, hashed); err != nil {
		return apperror.Internal(err, "update password")
	}
	return nil
}
