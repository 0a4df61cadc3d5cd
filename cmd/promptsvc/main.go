package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/container"
	"github.com/saulo-duarte/quizgen-lambda/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load configuration")
	}
	config.InitLogger(cfg.LogLevel)

	c, err := container.NewPromptService(ctx, cfg)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build prompt service")
	}

	if err := server.Run(ctx, cfg.Addr(), c.Router()); err != nil {
		config.Logger.WithError(err).Fatal("Server stopped")
	}
}
