package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/averine/opshub-service/config"
	customerHandler "github.com/averine/opshub-service/internal/customer/handler"
	customerRepository "github.com/averine/opshub-service/internal/customer/repository"
	customerUseCase "github.com/averine/opshub-service/internal/customer/usecase"
	inventoryHandler "github.com/averine/opshub-service/internal/inventory/handler"
	inventoryRepository "github.com/averine/opshub-service/internal/inventory/repository"
	inventoryUseCase "github.com/averine/opshub-service/internal/inventory/usecase"
	notificationHandler "github.com/averine/opshub-service/internal/notification/handler"
	notificationRepository "github.com/averine/opshub-service/internal/notification/repository"
	notificationUseCase "github.com/averine/opshub-service/internal/notification/usecase"
	"github.com/averine/opshub-service/internal/notifier"
	productHandler "github.com/averine/opshub-service/internal/product/handler"
	productRepository "github.com/averine/opshub-service/internal/product/repository"
	productUseCase "github.com/averine/opshub-service/internal/product/usecase"
	"github.com/averine/opshub-service/internal/storage"
	taskHandler "github.com/averine/opshub-service/internal/task/handler"
	taskRepository "github.com/averine/opshub-service/internal/task/repository"
	taskUseCase "github.com/averine/opshub-service/internal/task/usecase"
	"github.com/averine/opshub-service/pkg/cache"
	"github.com/averine/opshub-service/pkg/logger"
	"github.com/averine/opshub-service/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	appLogger.Info("starting opshub service",
		zap.String("app_env", cfg.Server.AppEnv),
		zap.String("http_port", cfg.Server.HTTPPort),
	)

	db, err := storage.Open(cfg.SQLite.Path)
	if err != nil {
		appLogger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	// The service works without Redis; product listing just skips its cache.
	redisCache, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("redis unavailable, product list caching disabled", zap.Error(err))
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	taskRepo := taskRepository.NewSQLiteRepository(db)
	productRepo := productRepository.NewSQLiteRepository(db)
	inventoryRepo := inventoryRepository.NewSQLiteRepository(db)
	customerRepo := customerRepository.NewSQLiteRepository(db)
	notificationRepo := notificationRepository.NewSQLiteRepository(db)

	events := notifier.NewService(notificationRepo, productRepo, appLogger)

	taskUC := taskUseCase.NewTaskUseCase(taskRepo, events, appLogger)
	productUC := productUseCase.NewProductUseCase(productRepo, inventoryRepo, redisCache, events, appLogger)
	inventoryUC := inventoryUseCase.NewInventoryUseCase(inventoryRepo, events, appLogger)
	customerUC := customerUseCase.NewCustomerUseCase(customerRepo, events, appLogger)
	notificationUC := notificationUseCase.NewNotificationUseCase(notificationRepo, appLogger)

	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RequestLogger(appLogger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rpc := router.Group("/api/v1/rpc")
	taskHandler.NewTaskHandler(taskUC, appLogger).Register(rpc)
	productHandler.NewProductHandler(productUC, appLogger).Register(rpc)
	inventoryHandler.NewInventoryHandler(inventoryUC, appLogger).Register(rpc)
	customerHandler.NewCustomerHandler(customerUC, appLogger).Register(rpc)
	notificationHandler.NewNotificationHandler(notificationUC, appLogger).Register(rpc)

	srv := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
