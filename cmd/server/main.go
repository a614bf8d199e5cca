package main

import (
	"log/slog"
	"os"

	"go-task-api/internal/app"
	"go-task-api/internal/logger"
)

func main() {
	slog.SetDefault(logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")))

	application, err := app.New()
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}
