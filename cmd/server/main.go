package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rewear.backend/internal/config"
	domainrepos "rewear.backend/internal/domain/repositories"
	"rewear.backend/internal/infrastructure/datasources"
	"rewear.backend/internal/infrastructure/mailer"
	"rewear.backend/internal/infrastructure/repositories"
	"rewear.backend/internal/infrastructure/storage"
	"rewear.backend/internal/interfaces/http/handlers"
	"rewear.backend/internal/interfaces/http/middleware"
	"rewear.backend/internal/interfaces/web"
	"rewear.backend/internal/usecases"
	"rewear.backend/pkg/jwt"
	"rewear.backend/pkg/logger"
	"rewear.backend/pkg/redis"
)

var (
	loadDotenv    = godotenv.Load
	loadCfg       = config.Load
	initLog       = logger.Init
	initRedis     = redis.Init
	openDB        = datasources.Open
	checkDB       = datasources.Check
	newAssetStore = storage.New
	runServer     = serve
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()
	ctx := context.Background()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := checkDB(cfg.Database); err != nil {
		logger.Warn(ctx, "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(ctx, "Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	assets, err := newAssetStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize asset storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r, err := buildRouter(cfg, db, assets, registry)
	if err != nil {
		return err
	}

	defer redis.Close()

	logger.Info(ctx, "ReWear backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "http://localhost:"+cfg.Server.Port+"/api/v1"),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// buildRouter wires repositories, usecases and handlers into a gin engine.
func buildRouter(cfg *config.Config, db *gorm.DB, assets domainrepos.AssetStore, registry *prometheus.Registry) (*gin.Engine, error) {
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	denylist := redis.NewTokenDenylist()
	accountMailer := mailer.New(cfg.SMTP, cfg.Server.FrontendURL, registry)

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)
	statsRepo := repositories.NewStatisticsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	adminUsecase := usecases.NewAdminUsecase(userRepo, itemRepo, commentRepo, orderRepo, statsRepo, accountMailer)
	categoryUsecase := usecases.NewCategoryUsecase(categoryRepo, itemRepo, uow, assets, cfg.Upload.MaxBytes)
	authUsecase := usecases.NewAuthUsecase(userRepo, assets, jwtService, denylist, cfg.Upload.MaxBytes)
	marketplaceUsecase := usecases.NewMarketplaceUsecase(itemRepo, categoryRepo, commentRepo, favoriteRepo, orderRepo, uow)
	profileUsecase := usecases.NewProfileUsecase(userRepo, itemRepo, subscriptionRepo, assets)

	pages, err := web.NewPages(authUsecase, profileUsecase)
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	handlers.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.NewHTTPMetrics(registry).Middleware())

	applyCORSMiddleware(r, cfg.Server.FrontendURL)
	registerHealthRoute(r)
	registerMetricsRoute(r, registry)
	if cfg.Storage.Driver == "" || cfg.Storage.Driver == "local" {
		registerStorageRoute(r, cfg.Storage.LocalPath)
	}

	registerAPIV1Routes(r, routeDeps{
		adminHandler:    handlers.NewAdminHandler(adminUsecase),
		categoryHandler: handlers.NewCategoryHandler(categoryUsecase),
		authHandler:     handlers.NewAuthHandler(authUsecase),
		itemHandler:     handlers.NewItemHandler(marketplaceUsecase),
		userHandler:     handlers.NewUserHandler(profileUsecase),
		authMiddleware:  middleware.AuthMiddleware(jwtService, denylist),
		optionalAuth:    middleware.OptionalAuth(jwtService, denylist),
	})
	pages.Register(r)

	return r, nil
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight requests.
func serve(r *gin.Engine, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
