package handler

import (
	"net/http"

	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/middleware"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const msgInvalidStoreID = "Invalid store ID"

type StoreHandler struct {
	storeService service.StoreService
	log          *logger.Logger
}

func NewStoreHandler(storeService service.StoreService, log *logger.Logger) *StoreHandler {
	return &StoreHandler{storeService: storeService, log: log}
}

// RegisterRoutes mounts the single-store read on public and everything else
// on protected. Writes are admin only.
func (h *StoreHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/:id", h.Get)

	protected.GET("", h.List)
	protected.GET("/owner/:ownerId", h.ListByOwner)

	admin := protected.Group("", middleware.RequireAdmin(h.log))
	admin.POST("", h.Create)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Delete)
}

// List returns every store, or only the caller's when the caller is a store owner.
// GET /api/stores
func (h *StoreHandler) List(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.storeService.List(ctx, p, listParams(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/stores/owner/:ownerId
func (h *StoreHandler) ListByOwner(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}
	ownerID, ok := idParam(c, h.log, "ownerId", "Invalid owner ID")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	params := listParams(c)
	params.Search, params.SortBy, params.SortOrder = "", "", ""

	list, err := h.storeService.ListByOwner(ctx, p, ownerID, params)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/stores/:id
func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := idParam(c, h.log, "id", msgInvalidStoreID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	store, err := h.storeService.Get(ctx, id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": store})
}

func (h *StoreHandler) Create(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	store, err := h.storeService.Create(ctx, p, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"store":   store,
	})
}

func (h *StoreHandler) Update(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}
	id, ok := idParam(c, h.log, "id", msgInvalidStoreID)
	if !ok {
		return
	}

	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	store, err := h.storeService.Update(ctx, p, id, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Store updated successfully",
		"store":   store,
	})
}

func (h *StoreHandler) Delete(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}
	id, ok := idParam(c, h.log, "id", msgInvalidStoreID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.storeService.Delete(ctx, p, id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted successfully"})
}
