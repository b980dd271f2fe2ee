package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"telegram-alerts/internal/bot"
	"telegram-alerts/internal/config"
	"telegram-alerts/internal/github"
	"telegram-alerts/internal/httpserver"
	"telegram-alerts/internal/telegram"
	pkgconfig "telegram-alerts/pkg/config"
	"telegram-alerts/pkg/logger"
	"telegram-alerts/pkg/otel"
)

var version = "dev"

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.LoadWebhook()
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config", zap.Error(err))
	}

	log.Info("Starting telegram webhook...",
		zap.String("port", cfg.Server.Port),
		zap.String("github_repo", cfg.GitHub.Repo),
		zap.Int64("allowed_chat_id", cfg.Telegram.AllowedChatID),
	)

	shutdownTracing, err := otel.Init(otel.Config{
		ServiceName:    "telegram-webhook",
		ServiceVersion: version,
		Environment:    pkgconfig.GetConfigEnv(),
		Endpoint:       cfg.Otel.Endpoint,
		Enabled:        cfg.Otel.Enabled,
	}, log)
	if err != nil {
		log.Fatal("Failed to init OpenTelemetry", zap.Error(err))
	}
	defer shutdownTracing()

	// Collaborators
	tgClient := telegram.NewClient(cfg.Telegram.APIBaseURL, cfg.Telegram.BotToken, log)
	ghClient := github.NewClient(cfg.GitHub.APIBaseURL, cfg.GitHub.Token, cfg.GitHub.Repo, cfg.GitHub.EventType, log)

	// Dispatcher + HTTP
	dispatcher := bot.NewDispatcher(cfg.Telegram.AllowedChatID, tgClient, ghClient, log)
	gin.SetMode(gin.ReleaseMode)
	router := httpserver.NewRouter(httpserver.NewWebhookHandler(dispatcher, log), log)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           router.Engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      httpserver.HandleTimeout + 10*time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down telegram webhook gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
	log.Info("telegram webhook shutdown complete")
}
