package logger

import (
	"go.uber.org/zap"
)

type zapLogger struct {
	log *zap.SugaredLogger
}

var _ Logger = &zapLogger{}

// NewZap adapts a *zap.SugaredLogger to the Logger interface.
func NewZap(log *zap.SugaredLogger) Logger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &zapLogger{log}
}

func (z *zapLogger) Debugf(format string, args ...any) {
	z.log.Debugf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	z.log.Infof(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	z.log.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...any) {
	z.log.Errorf(format, args...)
}
