package handler

import (
	"context"
	"net/http"

	"storerating/internal/logger"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	log              *logger.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, log: log}
}

// Get returns the dashboard for the caller's role.
// GET /api/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	p, ok := principal(c, h.log)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	dash, err := h.dashboardService.ForPrincipal(ctx, p)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log *logger.Logger
}

func NewHealthHandler(db Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn(c.Request.Context(), "health check failed", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
