package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/stregsystem/internal/pkg/env"
	"github.com/Lexv0lk/stregsystem/internal/pkg/logging"
	"github.com/Lexv0lk/stregsystem/internal/store/bootstrap"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := env.LoadDotEnv(".env"); err != nil {
		defaultLogger.Error("failed to load .env file", "error", err.Error())
		return
	}

	cfg, err := bootstrap.LoadStoreConfig()
	if err != nil {
		defaultLogger.Error("invalid configuration", "error", err.Error())
		return
	}

	logger := logging.NewLogger(cfg.LogLevel)

	app := bootstrap.NewStoreApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("store stopped with error", "error", err.Error())
	}
}
