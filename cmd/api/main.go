package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-api/internal/adapter/http/router"
	"github.com/ressKim-io/sentiment-api/internal/adapter/model"
	"github.com/ressKim-io/sentiment-api/internal/infrastructure/config"
	"github.com/ressKim-io/sentiment-api/internal/infrastructure/logger"
	"github.com/ressKim-io/sentiment-api/internal/infrastructure/metrics"
	"github.com/ressKim-io/sentiment-api/internal/usecase"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// configPath returns the --config flag, falling back to $SENTIMENT_CONFIG
func configPath(args []string) (string, error) {
	fs := pflag.NewFlagSet("api", pflag.ContinueOnError)
	path := fs.StringP("config", "c", os.Getenv(config.ConfigPathEnv),
		"config file (default $"+config.ConfigPathEnv+", then ./config.yaml if present)")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}

func run(args []string) error {
	path, err := configPath(args)
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load model artifacts; the service does not start without them
	arts, err := model.Load(cfg.Model.VectorizerPath, cfg.Model.ClassifierPath)
	if err != nil {
		log.Error("Failed to load model artifacts", zap.Error(err))
		return fmt.Errorf("failed to load model artifacts: %w", err)
	}
	log.Info("Model artifacts loaded",
		zap.String("vectorizer", arts.Vectorizer.Type()),
		zap.String("classifier", arts.Classifier.Type()),
		zap.Int("features", arts.Vectorizer.NumFeatures()),
	)

	m := metrics.New()
	predictUC := usecase.NewPredictUsecase(arts.Vectorizer, arts.Classifier, m, log)

	// Setup router
	r, err := router.Setup(predictUC, m, &cfg.Static, log)
	if err != nil {
		log.Error("Failed to mount web client", zap.Error(err))
		return fmt.Errorf("failed to setup router: %w", err)
	}

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal or listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serveErr:
		log.Error("Server failed", zap.Error(err))
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
