package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// AppLogger is the application logger backed by logrus
type AppLogger struct {
	*logrus.Logger
	serviceName string
	filePath    string
	file        *os.File
}

// Config holds logger configuration
type Config struct {
	Level       string `json:"level" mapstructure:"level"`
	FilePath    string `json:"file_path" mapstructure:"file_path"`
	ServiceName string `json:"service_name" mapstructure:"service_name"`
}

// NewAppLogger creates a new application logger
func NewAppLogger(config Config) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// JSON formatter for structured logging
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:      logger,
		serviceName: config.ServiceName,
	}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Log to both stdout and file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// entry returns a base entry carrying the service name
func (al *AppLogger) entry(fields []Field) *logrus.Entry {
	lf := toLogrusFields(fields)
	if al.serviceName != "" {
		lf["service"] = al.serviceName
	}
	return al.Logger.WithFields(lf)
}

// Info logs an info message with fields
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.entry(fields).Info(msg)
}

// Warn logs a warning message with fields
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.entry(fields).Warn(msg)
}

// Error logs an error message with fields
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.entry(fields).Error(msg)
}

// Debug logs a debug message with fields
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.entry(fields).Debug(msg)
}

// Fatal logs a fatal message with fields and exits
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.entry(fields).Fatal(msg)
}

// LogHTTPRequest logs an HTTP request with level based on status code
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.entry([]Field{
		Int("status", statusCode),
		String("latency", latency.String()),
		Int64("latency_ms", latency.Milliseconds()),
		String("client_ip", clientIP),
		String("method", method),
		String("path", path),
		String("request_id", requestID),
	})

	switch {
	case statusCode >= 500:
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Error("Server error")
	case statusCode >= 400:
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}
