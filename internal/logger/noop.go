package logger

// NoOpLogger discards everything
type NoOpLogger struct{}

// Discard is the shared NoOpLogger
var Discard Logger = NoOpLogger{}

// Debug does nothing
func (NoOpLogger) Debug(string, map[string]interface{}) {}

// Info does nothing
func (NoOpLogger) Info(string, map[string]interface{}) {}

// Warn does nothing
func (NoOpLogger) Warn(string, map[string]interface{}) {}

// Error does nothing
func (NoOpLogger) Error(string, map[string]interface{}) {}

// Debugf does nothing
func (NoOpLogger) Debugf(string, ...interface{}) {}

// Infof does nothing
func (NoOpLogger) Infof(string, ...interface{}) {}

// Warnf does nothing
func (NoOpLogger) Warnf(string, ...interface{}) {}

// Errorf does nothing
func (NoOpLogger) Errorf(string, ...interface{}) {}

// WithField returns the receiver
func (l NoOpLogger) WithField(string, interface{}) Logger { return l }

// WithFields returns the receiver
func (l NoOpLogger) WithFields(map[string]interface{}) Logger { return l }

// Sync returns nil
func (NoOpLogger) Sync() error { return nil }
