// Package logger builds configured log/slog loggers with environment-aware
// defaults: human-readable text output at debug level for development, JSON
// at info level for everything else. Helper attribute constructors keep log
// keys consistent across the service.
package logger
