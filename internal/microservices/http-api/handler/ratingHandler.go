package handler

import (
	"net/http"

	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const msgInvalidRatingID = "Invalid rating ID"

type RatingHandler struct {
	ratingService service.RatingService
	log           *logger.Logger
}

func NewRatingHandler(ratingService service.RatingService, log *logger.Logger) *RatingHandler {
	return &RatingHandler{ratingService: ratingService, log: log}
}

// RegisterRoutes expects rg to be behind AuthMiddleware.
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/store/:storeId", h.ListByStore)
	rg.GET("/user/me", h.ListMine)
	rg.GET("/owner/me", h.ListForOwner)
	rg.GET("/:id", h.Get)
}

// Submit creates the caller's rating for a store
// POST /api/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	var req dto.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := h.ratingService.Submit(ctx, p, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rating submitted successfully",
		"rating":  rating,
	})
}

// Update replaces value and comment of the caller's own rating
// PUT /api/ratings/:id
func (h *RatingHandler) Update(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}
	id, ok := idParam(c, h.log, "id", msgInvalidRatingID)
	if !ok {
		return
	}

	var req dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := h.ratingService.Update(ctx, p, id, req)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating updated successfully",
		"rating":  rating,
	})
}

// DELETE /api/ratings/:id
func (h *RatingHandler) Delete(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}
	id, ok := idParam(c, h.log, "id", msgInvalidRatingID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.ratingService.Delete(ctx, p, id); err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}

// GET /api/ratings/:id
func (h *RatingHandler) Get(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}
	id, ok := idParam(c, h.log, "id", msgInvalidRatingID)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rating, err := h.ratingService.Get(ctx, p, id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// GET /api/ratings/store/:storeId
func (h *RatingHandler) ListByStore(c *gin.Context) {
	storeID, ok := idParam(c, h.log, "storeId", "Invalid store ID")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.ratingService.ListByStore(ctx, storeID, listParams(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/ratings/user/me
func (h *RatingHandler) ListMine(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.ratingService.ListByUser(ctx, p, listParams(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/ratings/owner/me
func (h *RatingHandler) ListForOwner(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.ratingService.ListByStoreOwner(ctx, p, listParams(c))
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
