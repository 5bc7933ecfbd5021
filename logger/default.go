package logger

import "sync/atomic"

// defaultLogger is the package-level logger used by the convenience
// functions below. Replace it with SetDefault.
var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewDefault("vcd"))
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the package-level logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// Debug logs a debug message on the package-level logger.
func Debug(msg string, fields ...map[string]interface{}) {
	Default().Debug(msg, fields...)
}

// Info logs an info message on the package-level logger.
func Info(msg string, fields ...map[string]interface{}) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message on the package-level logger.
func Warn(msg string, fields ...map[string]interface{}) {
	Default().Warn(msg, fields...)
}

// Error logs an error message on the package-level logger.
func Error(msg string, fields ...map[string]interface{}) {
	Default().Error(msg, fields...)
}
