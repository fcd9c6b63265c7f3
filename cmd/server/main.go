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

	"github.com/gin-gonic/gin"

	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/config"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/exporter"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/logger"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/mailer"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/prompts"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/server"
	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/summarizer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Notes Summarizer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Sender: %s", cfg.Email.From)

	// Wire dependencies
	sum := summarizer.New(config.GeminiAPIKey(), cfg.Gemini.Model, cfg.Gemini.MaxOutputTokens, log)
	mail := mailer.New(config.ResendAPIKey(), cfg.Email.From, log)
	exp := exporter.New()

	tmpl, err := prompts.New(cfg.Prompts.TemplatePath, log)
	if err != nil {
		log.Error(ctx, "Failed to load prompt template: %v", err)
		os.Exit(1)
	}
	defer tmpl.Stop()

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(cfg, sum, mail, exp, tmpl, log)
	if err != nil {
		log.Error(ctx, "Failed to create server: %v", err)
		os.Exit(1)
	}

	httpSrv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Handler(),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Template hot reload runs for the life of the process
	go func() {
		if err := tmpl.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Prompt template watcher error: %v", err)
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Listening on http://%s", cfg.Addr())
	log.Info(ctx, "Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Server stopped")
}
