// Package logging holds the shared logger for the toolkit and all tool
// packages. It wraps charmbracelet/log so every component reports with the
// same level, timestamp format and prefix handling.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logger *log.Logger
	once   sync.Once
)

// Init configures the shared logger. Safe to call more than once; only the
// first call takes effect. An empty level defaults to "info".
func Init(level string) {
	once.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		switch level {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "warn":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
		}
	})
}

func get() *log.Logger {
	if logger == nil {
		Init("")
	}
	return logger
}

// Debug logs at debug level with optional key/value pairs.
func Debug(msg string, kv ...interface{}) { get().Debug(msg, kv...) }

// Info logs at info level with optional key/value pairs.
func Info(msg string, kv ...interface{}) { get().Info(msg, kv...) }

// Warn logs at warn level with optional key/value pairs.
func Warn(msg string, kv ...interface{}) { get().Warn(msg, kv...) }

// Error logs at error level with optional key/value pairs.
func Error(msg string, kv ...interface{}) { get().Error(msg, kv...) }

// With returns a sub-logger carrying the given key/value context.
func With(kv ...interface{}) *log.Logger { return get().With(kv...) }
