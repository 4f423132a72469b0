package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/VladPetriv/category_manager/config"
	"github.com/VladPetriv/category_manager/internal/app"
	"github.com/VladPetriv/category_manager/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Run(ctx, cfg, logger)
}
