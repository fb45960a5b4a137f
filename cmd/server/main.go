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

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/finwise/emi-engine/internal/advisor"
	"github.com/finwise/emi-engine/internal/config"
	"github.com/finwise/emi-engine/internal/handler"
	"github.com/finwise/emi-engine/internal/repository"
	"github.com/finwise/emi-engine/internal/service"
	"github.com/finwise/emi-engine/pkg/response"
)

func main() {
	// Load .env if present before viper reads the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize cache: Redis when configured, in-memory otherwise
	var cache repository.SummaryCache
	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		cache = repository.NewRedisCache(redisClient, cfg.GetCacheTTL())
	} else {
		logger.Info("REDIS_HOST not set, using in-memory summary cache")
		cache = repository.NewMemoryCache()
	}

	loanAdvisor := advisor.NewOpenAIAdvisor(
		cfg.Advisor.APIURL,
		cfg.Advisor.APIKey,
		cfg.Advisor.Model,
		cfg.Advisor.MaxTokens,
		cfg.GetAdvisorTimeout(),
		logger,
	)

	loanService := service.NewLoanService(cache, loanAdvisor, cfg, logger)
	loanHandler := handler.NewLoanHandler(loanService, logger)
	healthHandler := handler.NewHealthHandler(redisClient)

	router := setupRoutes(loanHandler, healthHandler)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func setupRoutes(loanHandler *handler.LoanHandler, healthHandler *handler.HealthHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.CORSMiddleware, response.LoggingMiddleware)

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/loans/calculate", loanHandler.CalculateLoan).Methods("POST")
	api.HandleFunc("/loans/advice", loanHandler.AdviseLoan).Methods("POST")

	return router
}
