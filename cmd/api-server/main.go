package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storerating/database"
	"storerating/internal/config"
	"storerating/internal/logger"
	"storerating/internal/metrics"
	"storerating/internal/microservices/http-api/dto"
	"storerating/internal/microservices/http-api/repository"
	"storerating/internal/microservices/http-api/router"
	"storerating/internal/microservices/http-api/service"
	"storerating/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.ServiceName,
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error(context.Background(), "closing database", err)
		}
	}()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, db, log); err != nil {
			return err
		}
	}

	var m *metrics.Metrics
	if cfg.PrometheusEnabled {
		m = metrics.New()
	}

	var limiter ratelimit.Limiter
	switch {
	case cfg.AuthRateLimit == 0:
		log.Warn(ctx, "auth rate limiting disabled", nil)
	case cfg.RedisURL != "":
		redisLimiter, err := ratelimit.NewFixedWindowLimiterFromURL(cfg.RedisURL, cfg.ServiceName+":auth", cfg.AuthRateLimit, cfg.AuthRateLimitWindow)
		if err != nil {
			return err
		}
		defer redisLimiter.Close()
		if err := redisLimiter.Ping(ctx); err != nil {
			return fmt.Errorf("redis unavailable: %w", err)
		}
		limiter = redisLimiter
	default:
		limiter = ratelimit.NewLocalLimiter(cfg.AuthRateLimit, cfg.AuthRateLimitWindow)
	}

	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidators()

	engine := router.New(router.Services{
		Auth:      service.NewAuthService(userRepo, tokens),
		Ratings:   service.NewRatingService(ratingRepo, storeRepo, m),
		Stores:    service.NewStoreService(storeRepo, userRepo),
		Users:     service.NewUserService(userRepo),
		Dashboard: service.NewDashboardService(dashboardRepo),
	}, router.Options{
		Log:         log,
		Metrics:     m,
		AuthLimiter: limiter,
		DB:          sqlDB,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "server listening on "+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
