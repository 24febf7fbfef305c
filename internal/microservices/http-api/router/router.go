// Package router assembles the gin engine for the store rating API.
package router

import (
	"net/http"
	"time"

	"storerating/internal/apperror"
	"storerating/internal/logger"
	"storerating/internal/metrics"
	"storerating/internal/microservices/http-api/handler"
	"storerating/internal/microservices/http-api/middleware"
	"storerating/internal/microservices/http-api/response"
	"storerating/internal/microservices/http-api/service"
	"storerating/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth      service.AuthService
	Ratings   service.RatingService
	Stores    service.StoreService
	Users     service.UserService
	Dashboard service.DashboardService
}

type Options struct {
	Log         *logger.Logger
	Metrics     *metrics.Metrics
	AuthLimiter ratelimit.Limiter
	DB          handler.Pinger
	CORSOrigins []string
}

func New(svc Services, opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	r := gin.New()
	r.Use(
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.Metrics(opts.Metrics),
		cors.New(corsConfig(opts.CORSOrigins)),
	)
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, log, apperror.NotFound("Route not found"))
	})

	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	api := r.Group("/api")
	if opts.DB != nil {
		api.GET("/health", handler.NewHealthHandler(opts.DB, log).Check)
	}

	authn := middleware.AuthMiddleware(svc.Auth, log)

	handler.NewAuthHandler(svc.Auth, log).RegisterRoutes(
		api.Group("/auth"),
		api.Group("/auth", authn),
		middleware.RateLimit(opts.AuthLimiter, log),
	)

	handler.NewStoreHandler(svc.Stores, log).RegisterRoutes(
		api.Group("/stores"),
		api.Group("/stores", authn),
	)

	handler.NewRatingHandler(svc.Ratings, log).RegisterRoutes(api.Group("/ratings", authn))

	handler.NewUserHandler(svc.Users, log).RegisterRoutes(
		api.Group("/users", authn, middleware.RequireAdmin(log)),
	)

	api.GET("/dashboard", authn, handler.NewDashboardHandler(svc.Dashboard, log).Get)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
