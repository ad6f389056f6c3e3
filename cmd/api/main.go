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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"realty-uae-backend/config"
	_ "realty-uae-backend/docs" // Important for Swagger
	"realty-uae-backend/internal/advisor"
	v1 "realty-uae-backend/internal/delivery/http/v1"
	"realty-uae-backend/internal/domain"
	"realty-uae-backend/internal/observability/metrics"
	"realty-uae-backend/internal/repository/memory"
	redisrepo "realty-uae-backend/internal/repository/redis"
	"realty-uae-backend/internal/usecase"
	"realty-uae-backend/pkg/audit"
	"realty-uae-backend/pkg/email"
	"realty-uae-backend/pkg/gemini"
	"realty-uae-backend/pkg/logger"
	"realty-uae-backend/pkg/redis"
)

// @title           Realty UAE API
// @version         1.0
// @description     Lead capture and AI market intelligence for UAE property investors.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting realty backend", "port", cfg.Port, "env", cfg.Environment)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	auditLogger := audit.NewLogger("realty-uae-backend", cfg.Environment)
	defer func() { _ = auditLogger.Sync() }()

	// 3. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	leadMetrics := metrics.NewLeadMetrics(registry)

	// 4. Setup AI Client
	ctx := context.Background()
	var gen advisor.Generator = gemini.Unavailable{}
	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	switch {
	case err == nil:
		defer geminiClient.Close()
		gen = geminiClient
		logger.Log.Info("Gemini client ready", "model", geminiClient.Model())
	case errors.Is(err, gemini.ErrMissingAPIKey):
		logger.Log.Warn("GEMINI_API_KEY not set - strategies and market insights will use fallback content")
	default:
		logger.Log.Error("Failed to create Gemini client - using fallback content", "error", err)
	}
	advisorSvc := advisor.NewService(gen, logger.Log, leadMetrics)

	// 5. Setup Insight Cache
	healthChecks := map[string]usecase.HealthChecker{}
	var insightCache domain.InsightCache = memory.NewInsightCache()
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case err == nil:
		defer redisClient.Close()
		insightCache = redisrepo.NewInsightCache(redisClient, "realty")
		healthChecks["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, redisClient) }
		logger.Log.Info("Using Redis market insight cache")
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("REDIS_URL not set - using in-memory market insight cache")
	default:
		logger.Log.Error("Failed to connect to Redis - using in-memory market insight cache", "error", err)
	}

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	var notifier domain.LeadNotifier
	if emailService.IsConfigured() {
		notifier = emailService
	} else {
		logger.Log.Warn("Email service not fully configured - advisors will not be notified of new leads")
	}

	// 7. Setup UseCases
	validate := usecase.NewValidator()
	leadUC := usecase.NewLeadUsecase(advisorSvc, notifier, auditLogger, leadMetrics, validate, cfg.SubmitDelay, emailService.AdvisorAddress())
	formUC := usecase.NewFormUsecase()
	marketUC := usecase.NewMarketUsecase(advisorSvc, insightCache, cfg.InsightsCacheTTL)
	healthUC := usecase.NewHealthUsecase(healthChecks)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		LeadUC:   leadUC,
		FormUC:   formUC,
		MarketUC: marketUC,
		HealthUC: healthUC,
		Validate: validate,
		Gatherer: registry,
		Config:   cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// in-flight submissions wait for the strategy and the submit delay
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.SubmitDelay+30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
