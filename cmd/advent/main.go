package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/advent/internal/advent"
	"github.com/vancomm/advent/internal/config"
	"github.com/vancomm/advent/internal/prob10"
	"github.com/vancomm/advent/internal/prob16"
	"github.com/vancomm/advent/internal/prob3"
)

// days lists every solved puzzle in day order. The runner executes them
// strictly in sequence.
var days = []advent.Solution{
	prob3.Solution,
	prob10.Solution,
	prob16.Solution,
}

func main() {
	day := flag.Int("day", 0, "run a single day (default: all)")
	check := flag.Bool("check", false, "verify answers against the recorded ones")
	flag.Parse()

	_ = godotenv.Load()

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	logger := slog.New(handler)

	for _, log := range []*logrus.Logger{prob10.Log, prob16.Log} {
		if err := advent.ConfigureDebugLog(log); err != nil {
			logger.Warn("failed to configure debug log", "error", err)
		}
	}

	var answers map[int]answerKey
	if *check {
		var err error
		answers, err = loadAnswers()
		if err != nil {
			logger.Error("failed to load answers", slog.Any("error", err))
			os.Exit(1)
		}
	}

	ran, failed := 0, false
	for _, s := range days {
		if *day != 0 && s.Day != *day {
			continue
		}
		ran++

		fmt.Printf("# Day %d: %s\n", s.Day, s.Name)
		res, err := advent.Run(os.Stdout, logger, s)
		if err != nil {
			logger.Error("solve failed", slog.Any("error", err))
			os.Exit(1)
		}
		if *check && !checkDay(res, answers[s.Day]) {
			failed = true
		}
	}

	if ran == 0 {
		logger.Error("no such day", slog.Int("day", *day))
		os.Exit(1)
	}
	if failed {
		os.Exit(1)
	}
}
