package handler

import (
	"net/http"

	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const msgInvalidUserID = "Invalid user ID"

// UserHandler serves admin user management. The router mounts it behind the
// admin guard.
type UserHandler struct {
	userService service.UserService
	log         *logger.Logger
}

func NewUserHandler(userService service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.userService.List(ctx, listParams(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.userService.Create(ctx, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c, h.log, "id", msgInvalidUserID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.userService.Get(ctx, id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c, h.log, "id", msgInvalidUserID)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.userService.Update(ctx, id, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, h.log, "id", msgInvalidUserID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.userService.Delete(ctx, id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
