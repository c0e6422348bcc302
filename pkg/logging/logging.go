package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotaudit/pkg/style"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the log file, relative to $XDG_STATE_HOME
var LogFileName = filepath.Join("dotaudit", "dotaudit.log")

// current is the log file opened by the last SetupLogger call
var current *os.File

// SetupLogger configures the global logger for a run.
// Human-readable records go to console, which must not be the report
// stream; every record is also appended to the state log file.
func SetupLogger(verbosity int, console io.Writer) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	// Pretty console output, colored only on a color terminal
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !style.ColorEnabled(console),
	}
	writers := []io.Writer{consoleWriter}

	if current != nil {
		_ = current.Close()
		current = nil
	}
	logPath, err := openLogFile()
	if err == nil {
		writers = append(writers, current)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// Report the file failure through the logger we just built
	if err != nil {
		log.Warn().Err(err).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}

	// Caller info for debug and trace
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// LevelFor maps a --log-verbose count to a zerolog level
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns where the log file lives. xdg caches the
// environment at init, so it is reloaded to honour XDG_STATE_HOME.
func LogFilePath() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, LogFileName)
}

// openLogFile opens the log file in append mode and stores it in current
func openLogFile() (string, error) {
	logPath := LogFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return logPath, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return logPath, fmt.Errorf("failed to open log file: %w", err)
	}
	current = file
	return logPath, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
