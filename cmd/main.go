package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"care-label-reader/config"
	telegram "care-label-reader/internal/api"
	"care-label-reader/internal/container"
	"care-label-reader/internal/infrastructure/report"
	"care-label-reader/internal/infrastructure/storage"
	"care-label-reader/internal/infrastructure/templates"
	"care-label-reader/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Загружаем шаблоны и готовим конвейер распознавания
	pipeline, err := vision.LoadPipeline(ctx, cfg.Pipeline, templates.NewDirLoader(cfg.TemplatesDir))
	if err != nil {
		log.Fatalf("Failed to create pipeline: %v", err)
	}
	defer pipeline.Close()

	// Создаём хранилище пользователей
	userRepo := storage.NewMemoryUserRepository()

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, pipeline, report.NewFormatter())

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	log.Println("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
