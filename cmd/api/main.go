package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"health-report/internal/catalog"
	"health-report/internal/config"
	"health-report/internal/events"
	apihttp "health-report/internal/http"
	"health-report/internal/model"
	"health-report/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	if cfg.LogDevelopment {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.LabelsFile, cfg.PlanTemplatesFile)
	if err != nil {
		logger.Warn("catalog load failed, using embedded defaults", zap.Error(err))
	}
	logger.Info("label catalog loaded", zap.Int("labels", len(cat.Labels())))

	var modelClient model.Client = model.NewHTTPClient(cfg.ModelBaseURL, cfg.ModelTimeout(), cfg.ModelMaxAttempts, logger)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, prediction cache disabled", zap.Error(err))
		} else {
			modelClient = model.NewCachedClient(modelClient, redisClient, cfg.PredictionCacheTTL(), logger)
		}
		cancel()
	}

	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	defer publisher.Close()
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("kafka brokers not configured, analysis events disabled")
	}

	reportSvc := service.NewReportService(cat, logger)
	assessmentSvc := service.NewAssessmentService(modelClient, cat, reportSvc, logger)
	healthHandler := apihttp.NewHealthHandler(logger, assessmentSvc, publisher)
	router := apihttp.NewRouter(logger, cfg.CORSAllowedOrigins, healthHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("model_url", cfg.ModelBaseURL))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}

	// Shutdown devuelve ErrServerClosed de inmediato; se espera el drenado antes de cerrar dependencias.
	<-shutdownDone
	healthHandler.Wait()
	logger.Info("server stopped")
}
