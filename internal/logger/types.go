package logger

import "fmt"

// LogLevel represents logging levels as strings
type LogLevel string

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production
	DebugLevel LogLevel = "debug"

	// InfoLevel is the default logging priority
	InfoLevel LogLevel = "info"

	// WarnLevel logs are more important than Info, but don't need individual human review
	WarnLevel LogLevel = "warn"

	// ErrorLevel logs are high-priority
	ErrorLevel LogLevel = "error"
)

const (
	// DefaultLogLevel is used when no level is configured
	DefaultLogLevel = InfoLevel

	// DefaultMaxSizeMB is the size a log file reaches before it is rotated
	DefaultMaxSizeMB = 20

	// DefaultMaxBackups is the number of rotated files kept
	DefaultMaxBackups = 5

	// DefaultMaxAgeDays is how long rotated files are kept
	DefaultMaxAgeDays = 15

	// ErrorKey is the field name errors are logged under
	ErrorKey = "error"
)

// ParseLevel validates s as a LogLevel. The empty string maps to DefaultLogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch l := LogLevel(s); l {
	case "":
		return DefaultLogLevel, nil
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return l, nil
	default:
		return "", fmt.Errorf("invalid log level %q", s)
	}
}

// Logger defines the logging methods required by the application.
// Uses generic types to avoid coupling to a specific library implementation.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger

	Sync() error
}
