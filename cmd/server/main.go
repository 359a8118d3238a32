package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"littlewords/internal/config"
	"littlewords/internal/handlers"
	"littlewords/internal/repository"
	"littlewords/internal/service"
	"littlewords/internal/storage"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Open the blob store (file, sqlite, postgres or mysql)
	store, err := storage.Open(cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer store.Close()

	logger.Info("storage ready", zap.String("type", cfg.StorageType))

	// Load the application state; a missing or unreadable blob starts fresh
	appRepo := repository.NewAppRepository(store, logger)
	children := service.NewChildService(context.Background(), appRepo, logger)

	validate := validator.New()
	childHandler := handlers.NewChildHandler(children, validate, logger)
	wordHandler := handlers.NewWordHandler(children, validate, logger)
	statsHandler := handlers.NewStatsHandler(children, logger)

	mux := http.NewServeMux()

	// Child profile routes
	mux.HandleFunc("POST /children", childHandler.CreateChild)
	mux.HandleFunc("GET /children", childHandler.ListChildren)
	mux.HandleFunc("GET /children/active", childHandler.GetActiveChild)
	mux.HandleFunc("GET /children/{id}", childHandler.GetChild)
	mux.HandleFunc("PATCH /children/{id}", childHandler.UpdateChild)
	mux.HandleFunc("DELETE /children/{id}", childHandler.DeleteChild)
	mux.HandleFunc("POST /children/{id}/activate", childHandler.ActivateChild)

	// Language data routes
	mux.HandleFunc("DELETE /children/{id}/languages/{language}", wordHandler.RemoveLanguage)
	mux.HandleFunc("POST /children/{id}/languages/{language}/restore", wordHandler.RestoreLanguage)

	// Word routes
	mux.HandleFunc("POST /children/{id}/languages/{language}/categories/{category}/words", wordHandler.AddWord)
	mux.HandleFunc("PATCH /children/{id}/languages/{language}/categories/{category}/words/{index}", wordHandler.UpdateWordStatus)
	mux.HandleFunc("DELETE /children/{id}/languages/{language}/categories/{category}/words/{index}", wordHandler.RemoveWord)

	// Statistics and report routes
	mux.HandleFunc("GET /children/{id}/stats", statsHandler.GetChildStats)
	mux.HandleFunc("GET /children/{id}/report", statsHandler.GetChildReport)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.Logging(logger, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
