package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of lead event
type EventType string

const (
	EventLeadCaptured   EventType = "lead_captured"
	EventLeadRejected   EventType = "lead_rejected"
	EventNotifyFailed   EventType = "advisor_notify_failed"
	EventStrategyFallen EventType = "strategy_fallback"
)

// LeadEvent represents a lead-related event to be logged. Contact details are masked.
type LeadEvent struct {
	Timestamp    time.Time         `json:"timestamp"`
	Event        EventType         `json:"event"`
	Email        string            `json:"email,omitempty"`
	Mobile       string            `json:"mobile,omitempty"`
	Budget       string            `json:"budget,omitempty"`
	PropertyType string            `json:"property_type,omitempty"`
	RequestID    string            `json:"request_id,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
}

// Logger writes lead events as structured records
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewLogger builds a production zap logger writing to stdout
func NewLogger(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"

	// Set output to stdout for container environments
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		// Fallback to a basic logger if config fails
		logger, _ = zap.NewProduction()
	}

	return NewWithZap(logger, serviceName, environment)
}

// NewWithZap wraps an existing zap logger
func NewWithZap(z *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zapLogger: z, serviceName: serviceName, environment: environment}
}

// Log logs a lead event
func (l *Logger) Log(ctx context.Context, event LeadEvent) {
	if l == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventLeadRejected, EventStrategyFallen:
		level = zapcore.WarnLevel
	case EventNotifyFailed:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", MaskEmail(event.Email)))
	}
	if event.Mobile != "" {
		fields = append(fields, zap.String("mobile", MaskMobile(event.Mobile)), zap.String("mobile_hash", HashValue(event.Mobile)))
	}
	if event.Budget != "" {
		fields = append(fields, zap.String("budget", event.Budget))
	}
	if event.PropertyType != "" {
		fields = append(fields, zap.String("property_type", event.PropertyType))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String(k, v))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.zapLogger.Sync()
}

// --- Helper Functions ---

// MaskEmail masks an email for logging (e.g., "j***@example.com"). Values without an
// @ are rejected input and are fully masked.
func MaskEmail(email string) string {
	atIndex := strings.LastIndex(email, "@")
	if atIndex <= 0 {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(email)
	if atIndex == utf8.RuneLen(first) {
		return "***" + email[atIndex:]
	}
	return string(first) + "***" + email[atIndex:]
}

// MaskMobile keeps only the last four digits (e.g., "***4567")
func MaskMobile(mobile string) string {
	if len(mobile) <= 4 {
		return "***"
	}
	return "***" + mobile[len(mobile)-4:]
}

// HashValue creates a SHA256 hash of a value (for correlating without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
