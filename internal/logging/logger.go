// Package logging provides category file-based logging for resolution.
// Logs are written to <config dir>/logs/ with one file per category. The
// daily gate runs unattended at login and must never write to the console
// or block session startup, so everything here degrades to a no-op when
// the log directory is unavailable or debug mode is off.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category.
type Category string

const (
	CategoryGate    Category = "gate"    // daily gate decisions
	CategoryInstall Category = "install" // service registrar steps
	CategoryRoutine Category = "routine" // morning routine lifecycle
	CategoryShop    Category = "shop"    // shop mutations and purchases
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger with category and file output.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	enabled   bool
	logLevel  = LevelInfo
)

// Initialize sets up the logging directory. level is one of
// debug/info/warn/error; debugMode false keeps the gate category active
// (gate decisions are the audit trail of unattended runs) but silences
// the rest.
func Initialize(configDir, level string, debugMode bool) error {
	if configDir == "" {
		return fmt.Errorf("config dir required")
	}
	logsDir = filepath.Join(configDir, "logs")
	enabled = debugMode

	switch level {
	case "debug":
		logLevel = LevelDebug
	case "warn", "warning":
		logLevel = LevelWarn
	case "error":
		logLevel = LevelError
	default:
		logLevel = LevelInfo
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("create logs directory: %w", err)
	}
	return nil
}

// categoryEnabled reports whether a category should write anything.
func categoryEnabled(category Category) bool {
	if category == CategoryGate || category == CategoryInstall {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category. Returns a
// no-op logger when the category is disabled or the log file cannot be
// opened; gate evaluation must never fail because logging does.
func Get(category Category) *Logger {
	if logsDir == "" || !categoryEnabled(category) {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix for easy rotation.
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files. Call at shutdown.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Gate logs to the gate category.
func Gate(format string, args ...any) {
	Get(CategoryGate).Info(format, args...)
}

// Install logs to the install category.
func Install(format string, args ...any) {
	Get(CategoryInstall).Info(format, args...)
}

// Routine logs to the routine category.
func Routine(format string, args ...any) {
	Get(CategoryRoutine).Info(format, args...)
}
