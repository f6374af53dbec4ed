// Package logging provides structured logging configuration using zerolog.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration. The level can be
// overridden through the GENAI_LOG_LEVEL environment variable.
func DefaultConfig() Config {
	level := LevelInfo
	if env := os.Getenv("GENAI_LOG_LEVEL"); env != "" {
		level = LogLevel(env)
	}
	return Config{
		Level:  level,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	log.Logger = logger

	return logger
}

// parseLevel converts LogLevel to zerolog.Level.
func parseLevel(level LogLevel) zerolog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a new logger with the given component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Page transitions (collection, item count, has_more)
//   - Cache operations (hit/miss, key, TTL)
//   - Conditional request flow (ETags)
//
// Info: Normal operation events
//   - Quota state updates (healthy)
//   - Successful retries
//
// Warn: Warning conditions that don't prevent operation
//   - Quota throttling active
//   - Retry attempts and exhaustion
//   - Cache errors (fallback to direct request)
//
// Error: Error conditions requiring attention
//   - Failed requests (after retries)
//   - Critical quota blocks
//   - Configuration errors
//
// Context Fields:
//   - collection: paged collection name (models, files, ...)
//   - endpoint: API path
//   - status: HTTP status code
//   - error_class: error classification (client, server, rate_limit, network)
//   - requests_remaining: current quota level
