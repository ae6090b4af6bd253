package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pontobot/internal/config"
	"pontobot/internal/database"
	"pontobot/internal/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repository := database.NewRepository(db)

	bot, err := discord.New(cfg.DiscordToken, repository,
		cfg.LogChannelName, cfg.HistoryChannelName, cfg.ResumeWindow)
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}
	defer bot.Stop()

	log.Println("Bot is running, SIGINT or SIGTERM to exit")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down bot...")
}
