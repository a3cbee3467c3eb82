package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

// Init initializes the logger. Output goes to a file because stderr belongs
// to the terminal UI while the program is running.
func Init(path string, verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		// Can't create the log file; fall back to stderr
		f = os.Stderr
	}

	logger = log.New(f)
	logger.SetLevel(level)
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}
