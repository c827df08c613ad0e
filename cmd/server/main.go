package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"love_space/internal/config"
	"love_space/internal/handler"
	"love_space/internal/middleware"
	"love_space/internal/repository"
	"love_space/internal/service"
	"love_space/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	appLogger := logger.New(cfg.Log.Level)

	// Подключение к PostgreSQL
	dbPool, err := pgxpool.New(context.Background(), cfg.Database.DSN)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", "error", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(context.Background()); err != nil {
		appLogger.Fatal("Failed to ping database", "error", err)
	}
	appLogger.Info("Database connection established")

	// Подключение к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		appLogger.Fatal("Failed to connect to Redis", "error", err)
	}
	appLogger.Info("Redis connection established")

	repos := repository.NewRepositories(dbPool, rdb, appLogger)
	services := service.NewServices(repos, cfg, appLogger)
	handlers := handler.NewHandlers(services, cfg, appLogger)

	router := setupRouter(handlers, cfg, appLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		appLogger.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", "error", err)
	}

	appLogger.Info("Server exited")
}

func setupRouter(handlers *handler.Handlers, cfg *config.Config, log logger.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Health check
	router.GET("/health", handlers.Health.Check)

	// Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Комнаты адресуются снаружи только коротким кодом
	rooms := router.Group("/rooms")
	{
		rooms.GET("/:code", handlers.Room.Get)
		rooms.POST("/:code", handlers.Room.Create)
		rooms.POST("/:code/join", handlers.Membership.Join)
		rooms.POST("/:code/messages", handlers.Message.Post)
		rooms.PUT("/:code/theme", handlers.Theme.Set)
	}

	return router
}
