package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	globalLogger *AppLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(l *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger instance. If no logger was set a
// default stdout logger is returned so call sites never receive nil.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		return &AppLogger{Logger: logrus.StandardLogger()}
	}
	return globalLogger
}

// Debug logs a debug message with structured fields
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func Info(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func Error(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Error(msg)
}

// Fatal logs a fatal message with structured fields and exits
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrusFields(fields)).Fatal(msg)
}
