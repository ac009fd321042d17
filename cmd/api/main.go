package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/triviaforge/trivia-api/internal/config"
	"github.com/triviaforge/trivia-api/internal/container"
	"github.com/triviaforge/trivia-api/internal/router"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		config.Logger().WithError(err).Fatal("Failed to load config")
	}
	config.InitLogger(cfg)
	log := config.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := config.Connect(ctx, cfg.Postgres.DSN()); err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	c := container.New(config.DB)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: router.New(router.RouterConfig{
			CORS:            cfg.CORS,
			CategoryHandler: c.CategoryContainer.Handler,
			QuestionHandler: c.QuestionContainer.Handler,
			QuizHandler:     c.QuizContainer.Handler,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	case err := <-errCh:
		log.WithError(err).Fatal("HTTP server error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.GracefulShutdownSeconds)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP shutdown error")
	}

	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("Shutdown complete")
}
