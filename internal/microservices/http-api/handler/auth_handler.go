package handler

import (
	"net/http"

	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	log         *logger.Logger
}

func NewAuthHandler(authService service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// RegisterRoutes mounts sign-up/sign-in on public behind limit, and the
// profile routes on protected.
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup, limit gin.HandlerFunc) {
	public.POST("/register", limit, h.Register)
	public.POST("/login", limit, h.Login)

	protected.GET("/profile", h.Profile)
	protected.PUT("/profile", h.UpdateProfile)
	protected.PUT("/change-password", h.ChangePassword)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.authService.Register(ctx, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.authService.Login(ctx, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.authService.Profile(ctx, p)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.authService.UpdateProfile(ctx, p, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.authService.ChangePassword(ctx, p, req); err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
