package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger provides structured logging with a component tag on every entry.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// LevelFromEnvironment resolves the log level from LOG_LEVEL, with DEBUG=1
// as a fallback switch.
func LevelFromEnvironment() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}
