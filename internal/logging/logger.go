// Package logging provides categorized file-based debug logging for Compa AI.
// Logs are written to .compa/logs/ with separate files per category.
// Logging is controlled by the COMPA_DEBUG environment variable - when it is
// unset or false, no directories are created and every call is a no-op, so the
// user-facing chat surface stays clean.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup and wiring
	CategoryConfig  Category = "config"  // Environment and generation settings
	CategoryHistory Category = "history" // History file reads/writes
	CategoryContext Category = "context" // Persona context loading
	CategorySession Category = "session" // Bootstrap decisions and chat lifecycle
	CategoryAPI     Category = "api"     // Gemini API calls
)

var (
	mu      sync.Mutex
	loggers = make(map[Category]*zap.SugaredLogger)
	files   []*os.File
	logsDir string
	runID   string
	enabled bool

	nop = zap.NewNop().Sugar()
)

// Initialize sets up the logging directory for this run. Call once at startup
// with the workspace path and a run correlation ID. When debug mode is off
// this is a silent no-op.
func Initialize(workspace, id string) error {
	mu.Lock()
	enabled = debugEnabled()
	runID = id
	if !enabled {
		mu.Unlock()
		return nil
	}
	logsDir = filepath.Join(workspace, ".compa", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		enabled = false
		mu.Unlock()
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	mu.Unlock()

	Boot("=== Compa AI logging initialized ===")
	Boot("run: %s", id)
	Boot("logs directory: %s", logsDir)
	return nil
}

func debugEnabled() bool {
	switch strings.ToLower(os.Getenv("COMPA_DEBUG")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// IsDebugMode returns whether debug logging is enabled.
func IsDebugMode() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Get returns (or creates) the logger for the given category. Returns a no-op
// logger when debug mode is disabled or the log file cannot be opened.
func Get(category Category) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logsDir == "" {
		return nop
	}
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date prefix keeps rotation a matter of deleting old files.
	date := time.Now().Format("2006-01-02")
	path := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open log file %s: %v\n", path, err)
		loggers[category] = nop
		return nop
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), zapcore.DebugLevel)
	l := zap.New(core).Named(string(category)).Sugar().With("run", runID)

	files = append(files, file)
	loggers[category] = l
	return l
}

// Close flushes and closes all open log files. Call at shutdown.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	for _, l := range loggers {
		_ = l.Sync()
	}
	for _, f := range files {
		_ = f.Close()
	}
	loggers = make(map[Category]*zap.SugaredLogger)
	files = nil
	logsDir = ""
	enabled = false
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// These are no-ops when debug mode is disabled
// =============================================================================

// Boot logs to the boot category.
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Infof(format, args...)
}

// BootDebug logs debug to the boot category.
func BootDebug(format string, args ...interface{}) {
	Get(CategoryBoot).Debugf(format, args...)
}

// Config logs to the config category.
func Config(format string, args ...interface{}) {
	Get(CategoryConfig).Infof(format, args...)
}

// ConfigWarn logs a warning to the config category.
func ConfigWarn(format string, args ...interface{}) {
	Get(CategoryConfig).Warnf(format, args...)
}

// History logs to the history category.
func History(format string, args ...interface{}) {
	Get(CategoryHistory).Infof(format, args...)
}

// HistoryWarn logs a warning to the history category.
func HistoryWarn(format string, args ...interface{}) {
	Get(CategoryHistory).Warnf(format, args...)
}

// HistoryError logs an error to the history category.
func HistoryError(format string, args ...interface{}) {
	Get(CategoryHistory).Errorf(format, args...)
}

// Context logs to the context category.
func Context(format string, args ...interface{}) {
	Get(CategoryContext).Infof(format, args...)
}

// ContextWarn logs a warning to the context category.
func ContextWarn(format string, args ...interface{}) {
	Get(CategoryContext).Warnf(format, args...)
}

// Session logs to the session category.
func Session(format string, args ...interface{}) {
	Get(CategorySession).Infof(format, args...)
}

// SessionDebug logs debug to the session category.
func SessionDebug(format string, args ...interface{}) {
	Get(CategorySession).Debugf(format, args...)
}

// API logs to the api category.
func API(format string, args ...interface{}) {
	Get(CategoryAPI).Infof(format, args...)
}

// APIDebug logs debug to the api category.
func APIDebug(format string, args ...interface{}) {
	Get(CategoryAPI).Debugf(format, args...)
}

// APIError logs an error to the api category.
func APIError(format string, args ...interface{}) {
	Get(CategoryAPI).Errorf(format, args...)
}
