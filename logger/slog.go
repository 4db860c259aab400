package logger

import (
	"fmt"
	"log/slog"
)

type slogLogger struct {
	log *slog.Logger
}

var _ Logger = &slogLogger{}

// NewSlog adapts a *slog.Logger to the Logger interface. Works with any
// slog handler, e.g. tint for colored terminal output:
//
//	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
//	client := resilient_go.NewClient(baseUrl, resilient_go.WithLogger(logger.NewSlog(log)))
func NewSlog(log *slog.Logger) Logger {
	if log == nil {
		log = slog.Default()
	}
	return &slogLogger{log}
}

func (s *slogLogger) Debugf(format string, args ...any) {
	s.log.Debug(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Infof(format string, args ...any) {
	s.log.Info(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Warnf(format string, args ...any) {
	s.log.Warn(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Errorf(format string, args ...any) {
	s.log.Error(fmt.Sprintf(format, args...))
}
