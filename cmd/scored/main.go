package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/credbureau/scoring-service/internal/application/usecase"
	"github.com/credbureau/scoring-service/internal/domain/service"
	"github.com/credbureau/scoring-service/internal/infrastructure/config"
	"github.com/credbureau/scoring-service/internal/infrastructure/messaging"
	"github.com/credbureau/scoring-service/internal/infrastructure/ml"
	grpcpresentation "github.com/credbureau/scoring-service/internal/presentation/grpc"
	"github.com/credbureau/scoring-service/internal/presentation/rest"
	"github.com/credbureau/scoring-service/pkg/kafka"
	"github.com/credbureau/scoring-service/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting scoring-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"model_url", cfg.ModelURL,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: "scoring-service",
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdown(ctx)
	}

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "scoring-service",
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}

	// Wire infrastructure adapters.
	producer := kafka.NewProducer(kafka.Config{
		Brokers:  []string{cfg.KafkaBroker},
		ClientID: "scoring-service",
	})
	defer producer.Close()

	eventPublisher := messaging.NewKafkaPublisher(producer, cfg.KafkaTopic, logger)
	modelClient := ml.NewHTTPModelClient(cfg.ModelURL, logger)

	// Wire domain services.
	scoringService, err := service.NewScoringService(service.ScoringConfig{
		ExpectedFeatures: cfg.ModelFeatures,
		ScoreMin:         cfg.ScoreMin,
		ScoreMax:         cfg.ScoreMax,
	})
	if err != nil {
		logger.Error("invalid scoring configuration", "error", err)
		os.Exit(1)
	}
	eligibilityChecker := service.NewEligibilityChecker()

	// Wire use cases.
	scoreApplicantUC := usecase.NewScoreApplicant(scoringService, modelClient, eventPublisher, logger)
	checkEligibilityUC := usecase.NewCheckEligibility(eligibilityChecker, eventPublisher, logger)

	// gRPC server.
	grpcHandler := grpcpresentation.NewScoringServiceHandler(scoreApplicantUC, checkEligibilityUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// HTTP server (scoring API, health checks, metrics).
	scoringHandler := rest.NewScoringHandler(scoreApplicantUC, checkEligibilityUC, logger)
	healthHandler := rest.NewHealthHandler(modelClient, logger)

	httpMux := http.NewServeMux()
	scoringHandler.RegisterRoutes(httpMux)
	healthHandler.RegisterRoutes(httpMux)
	httpMux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("scoring-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down scoring-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("scoring-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
