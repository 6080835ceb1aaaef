package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"soroia/config"
	_ "soroia/docs" // Swagger docs
	"soroia/internal/app"
	tgDelivery "soroia/internal/chat/delivery/telegram"
	"soroia/internal/httpserver"
	"soroia/pkg/log"
	"soroia/pkg/telegram"
)

// @title       SoroIA API
// @description Asistente conversacional del Museo Sorolla: consultas al catálogo, textos y conversación.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SoroIA...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Assistant
	assistantApp, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize assistant: %v", err)
		return
	}
	defer assistantApp.Close()

	// 4. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantApp.Chat, bot, assistantApp.Images)
		registerWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram channel skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimit:       cfg.RateLimit,
		ChatUseCase:     assistantApp.Chat,
		Images:          assistantApp.Images,
		TelegramHandler: telegramHandler,
		Catalog:         assistantApp,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points the bot at this server. Without a configured URL the
// public ngrok tunnel is used when one is running.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, webhookURL string) {
	if webhookURL == "" {
		tunnel, err := detectTunnelURL(ctx, ngrokAPIBase, ngrokProbeAttempts, ngrokProbeInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = tunnel + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
