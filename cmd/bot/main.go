package main

import (
	"context"
	"log"
	"os"

	"cmdbot/internal/adapters/discord"
	"cmdbot/internal/application"
	"cmdbot/internal/config"
	"cmdbot/internal/infrastructure/database"
	"cmdbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("database: %v", err)
	}

	settingsRepo := database.NewGuildSettingsRepository(pool)
	settings := application.NewSettingsService(settingsRepo, cfg.DefaultLocale, cfg.DefaultPrefix)
	languages := i18n.NewHandler(cfg.DefaultLocale)

	bot, err := discord.NewBot(cfg, settings, languages)
	if err != nil {
		log.Printf("bot: %v", err)
		os.Exit(1)
	}
	if err := bot.Start(); err != nil {
		log.Printf("bot: %v", err)
		os.Exit(1)
	}
}
