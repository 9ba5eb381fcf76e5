package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ridelabs/drivescore/internal/pkg/models"
)

// AppLogger is the application logger, a structured logrus logger that can
// mirror output to a file
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	// JSON formatter for structured logging
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:   l,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(); err != nil {
			return nil, fmt.Errorf("failed to setup log file output: %w", err)
		}
	}

	return appLogger, nil
}

func (l *AppLogger) setupFileOutput() error {
	dir := filepath.Dir(l.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	l.file = file
	l.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// Close releases the log file if one is open
func (l *AppLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
