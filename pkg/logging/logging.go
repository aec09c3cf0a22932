// pkg/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/virtforge/osid/pkg/config"
)

// logWriter stores the current log writer globally.
var logWriter io.Writer

// init sets the global logging level to ErrorLevel until configuration is
// loaded, so early startup stays quiet.
func init() {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	logWriter = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// ConfigureGlobalLogging applies the loaded log configuration to the global
// zerolog logger.
func ConfigureGlobalLogging(cfg config.LogConfig) error {
	level := parseLogLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	w, err := buildWriter(cfg)
	if err != nil {
		return err
	}
	logWriter = w

	logContext := zerolog.New(w).With().Timestamp()
	if level <= zerolog.DebugLevel {
		logContext = logContext.Caller()
	}

	log.Logger = logContext.Logger().Level(level)
	zerolog.DefaultContextLogger = &log.Logger

	return nil
}

// buildWriter picks the output writer from the format and file settings.
// JSON format writes raw zerolog events; text format goes through the
// console writer.
func buildWriter(cfg config.LogConfig) (io.Writer, error) {
	var out io.Writer = os.Stderr
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
	}

	if strings.EqualFold(cfg.Format, "json") {
		return out, nil
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}, nil
}

// parseLogLevel converts a string log level to zerolog.Level.
func parseLogLevel(levelString string) zerolog.Level {
	if levelString == "" {
		levelString = "error"
	}

	level, err := zerolog.ParseLevel(strings.ToLower(levelString))
	if err != nil {
		log.Error().Err(err).
			Str("logLevel", levelString).
			Msg("Invalid log level provided. Defaulting to error level.")
		return zerolog.ErrorLevel
	}
	return level
}

// SetLogWriter sets the global log writer.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// GetLogWriter returns the configured log writer.
func GetLogWriter() io.Writer {
	return logWriter
}
