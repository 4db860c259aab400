package logger

// Logger is the logging interface used throughout resilient-go. It keeps
// the library free of a hard logging dependency: plug in your preferred
// implementation (slog, zap, standard log) through the provided adapters,
// or use Noop to disable logging entirely.
//
// The library logs:
// - request dispatch and outcome classification
// - retry attempt tracking
// - batch processing status and errors
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := resilient_go.NewClient(baseUrl, resilient_go.WithLogger(myLogger))
//
//	// Using an slog-backed logger
//	client := resilient_go.NewClient(baseUrl, resilient_go.WithLogger(logger.NewSlog(slog.Default())))
//
//	// Disable logging entirely
//	client := resilient_go.NewClient(baseUrl, resilient_go.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
