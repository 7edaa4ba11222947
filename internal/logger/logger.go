package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// TODO: Consider log rotation

var (
	defaultLogger *slog.Logger
	logFile       *os.File
)

// Options controls where log records go.
type Options struct {
	// Stderr mirrors records to stderr. Off by default because stderr shares
	// the terminal with the in-place countdown line.
	Stderr bool
	// Level is the minimum level recorded. The zero value is slog.LevelInfo.
	Level slog.Level
}

// LogFilePath determines the path for the application log file following the XDG Base Directory layout.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	logDir := filepath.Join(stateDir, "boxing-timer")
	return filepath.Join(logDir, "app.log"), nil
}

// openLogFile creates the log directory and opens the log file for appending.
func openLogFile() (*os.File, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	logDir := filepath.Dir(logFilePath)
	// Create directory with appropriate permissions (0750: user rwx, group rx, others ---)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}
	// Open file for appending (0640: user rw, group r, others ---)
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// InitLogger configures the package logger. It should be called once at the
// beginning of the application. If the log file cannot be opened, records
// fall back to stderr so they are not lost.
func InitLogger(opts Options) {
	Close()

	var writers []io.Writer
	file, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v. File logging disabled.\n", err)
	} else {
		logFile = file
		writers = append(writers, file)
	}
	if opts.Stderr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	if len(writers) == 1 {
		finalWriter = writers[0]
	} else {
		finalWriter = io.MultiWriter(writers...)
	}

	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: opts.Level})
	defaultLogger = slog.New(handler)
}

// SetLogger replaces the package logger, e.g. with one writing to a buffer in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// Close releases the log file, if one is open.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		InitLogger(Options{})
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	checkLogger()
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
