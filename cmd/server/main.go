package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"trendpulse-backend/internal/config"
	"trendpulse-backend/internal/handlers"
	"trendpulse-backend/internal/logger"
	"trendpulse-backend/internal/router"
	"trendpulse-backend/internal/services"
	"trendpulse-backend/internal/store"
	"trendpulse-backend/internal/ws"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()
	log.Info("starting TrendPulse backend", zap.String("env", cfg.Env))

	// ──── Step 2: Initialize Store ────
	st := store.New()
	st.Seed(context.Background())
	log.Info("in-memory store seeded")

	// ──── Step 3: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.AITimeoutSeconds)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Gemini client initialization failed", zap.Error(err))
	}
	defer geminiService.Close()
	log.Info("Gemini client initialized", zap.String("model", cfg.GeminiModel))

	// ──── Step 4: Event Hub ────
	hub := ws.NewHub(log)

	// ──── Step 5: Handlers & Router ────
	videoHandler := handlers.NewVideoHandler(st)
	projectHandler := handlers.NewProjectHandler(st, hub)
	analyticsHandler := handlers.NewAnalyticsHandler(st, hub)
	suggestionHandler := handlers.NewSuggestionHandler(st, geminiService, hub)

	r := router.New(log, videoHandler, projectHandler, analyticsHandler, suggestionHandler, hub, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info("TrendPulse backend ready", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}
