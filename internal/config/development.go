package config

import "os"

// Development reports whether the DEVELOPMENT env variable is set to
// anything other than "0". Development mode switches log handlers to a
// colored format and lowers the level to Debug.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
