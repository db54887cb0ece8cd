// Package logging defines the minimal structured-logging surface used
// across the project. Implementations can wrap slog, zap, zerolog, etc.
package logging

// Logger is a structured logger. The variadic args are key-value pairs:
//
//	log.Info("saving record", "namespace", ns, "count", len(records))
type Logger interface {
	// Debug logs fine-grained diagnostic detail.
	Debug(msg string, args ...any)

	// Info logs an informational message.
	Info(msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(msg string, args ...any)

	// Error logs a failure.
	Error(msg string, args ...any)

	// With returns a child logger that always includes the given key-value
	// pairs.
	With(args ...any) Logger
}
