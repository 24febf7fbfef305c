package handler

import (
	"net/http"
	"testing"
	"time"

	"storerating/internal/apperror"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/middleware"
	"storerating/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authRouter(svc *MockAuthService, limit int) *gin.Engine {
	r := gin.New()
	public := r.Group("/api/auth")
	protected := r.Group("/api/auth", asPrincipal(userA))
	limiter := middleware.RateLimit(ratelimit.NewLocalLimiter(limit, time.Hour), nopLog)
	NewAuthHandler(svc, nopLog).RegisterRoutes(public, protected, limiter)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	svc := new(MockAuthService)
	r := authRouter(svc, 10)

	req := dto.RegisterRequest{Name: "Alice Wonderland Liddell", Email: "alice@example.com", Password: "Secret12!"}
	svc.On("Register", mock.Anything, req).Return(&dto.AuthResponse{
		Message: "User registered successfully",
		User:    dto.UserResponse{ID: 1, Name: req.Name, Email: req.Email, Role: "user"},
		Token:   "signed",
	}, nil)

	rec, body := do(t, r, http.MethodPost, "/api/auth/register", nil, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "signed", body["token"])
	assert.NotContains(t, body["user"], "password")

	rec, body = do(t, r, http.MethodPost, "/api/auth/register", nil, dto.RegisterRequest{Name: "short", Email: "nope", Password: "weak"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := body["details"].(map[string]any)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestAuthHandler_LoginFailureAndRateLimit(t *testing.T) {
	svc := new(MockAuthService)
	r := authRouter(svc, 2)

	req := dto.LoginRequest{Email: "alice@example.com", Password: "wrong"}
	svc.On("Login", mock.Anything, req).Return(nil, apperror.Unauthorized("Invalid credentials"))

	rec, body := do(t, r, http.MethodPost, "/api/auth/login", nil, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", body["error"])

	do(t, r, http.MethodPost, "/api/auth/login", nil, req)
	rec, body = do(t, r, http.MethodPost, "/api/auth/login", nil, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", body["code"])
	svc.AssertNumberOfCalls(t, "Login", 2)
}

func TestAuthHandler_Profile(t *testing.T) {
	svc := new(MockAuthService)
	r := authRouter(svc, 10)

	name := "Alice Wonderland Liddell II"
	svc.On("Profile", mock.Anything, userA).Return(&dto.UserResponse{ID: 1, Email: userA.Email}, nil)
	svc.On("UpdateProfile", mock.Anything, userA, dto.UpdateProfileRequest{Name: &name}).
		Return(&dto.UserResponse{ID: 1, Name: name}, nil)
	svc.On("ChangePassword", mock.Anything, userA, dto.ChangePasswordRequest{CurrentPassword: "bad", NewPassword: "Secret12!"}).
		Return(apperror.Validation("Current password is incorrect"))

	rec, body := do(t, r, http.MethodGet, "/api/auth/profile", &userA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userA.Email, body["user"].(map[string]any)["email"])

	rec, body = do(t, r, http.MethodPut, "/api/auth/profile", &userA, map[string]any{"name": name})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Profile updated successfully", body["message"])

	rec, body = do(t, r, http.MethodPut, "/api/auth/change-password", &userA, map[string]any{"currentPassword": "bad", "newPassword": "Secret12!"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Current password is incorrect", body["error"])
}
