package advent

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/advent/internal/config"
)

// ConfigureDebugLog applies the shared settings to a package-level trace
// logger: Debug level and forced colors in development mode, plus a
// rotating JSON file sink when ADVENT_LOG_FILE is set, keeping a capped
// on-disk record of debug runs over big inputs.
func ConfigureDebugLog(log *logrus.Logger) error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}
	log.SetLevel(logLevel)

	if filename := config.LogFile(); filename != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   filename,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to create log file hook: %w", err)
		}
		log.AddHook(hook)
	}

	return nil
}
