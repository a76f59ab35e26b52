package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"escrowbot/config"
	"escrowbot/pkg/bot"
	"escrowbot/pkg/logger"
	"escrowbot/storage/postgres"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	escrowBot, err := bot.New(&cfg, pgStore, log)
	if err != nil {
		log.Error("Failed to initialize bot", logger.Error(err))
		os.Exit(1)
	}

	go func() {
		log.Info("🚀 Escrow bot is starting...")
		escrowBot.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("Stopping bot and shutting down...")
	escrowBot.Stop()
}
