package config

import "os"

// LogFile returns the path of the rotating debug log file, or "" when
// file logging is disabled.
func LogFile() string {
	return os.Getenv("ADVENT_LOG_FILE")
}

// AnswersPath returns an override path for the recorded answers file used
// by the runner's check mode, or "" to use the embedded copy.
func AnswersPath() string {
	return os.Getenv("ADVENT_ANSWERS")
}
