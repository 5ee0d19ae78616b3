package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/vancomm/advent/internal/advent"
	"github.com/vancomm/advent/internal/config"
	"github.com/vancomm/advent/internal/prob3"
)

func main() {
	_ = godotenv.Load()

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	if _, err := advent.Run(os.Stdout, logger, prob3.Solution); err != nil {
		logger.Error("solve failed", slog.Any("error", err))
		os.Exit(1)
	}
}
