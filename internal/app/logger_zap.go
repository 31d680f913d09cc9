//go:build !tinygo

package app

import "go.uber.org/zap"

// ZapLogger adapts zap to the Logger seam.
type ZapLogger struct {
	s *zap.SugaredLogger
}

func NewZapLogger(debug bool) (*ZapLogger, error) {
	var base *zap.Logger
	var err error
	if debug {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &ZapLogger{s: base.Sugar()}, nil
}

func (l *ZapLogger) Infof(component string, format string, args ...interface{}) {
	l.s.With("component", component).Infof(format, args...)
}

func (l *ZapLogger) Errorf(component string, format string, args ...interface{}) {
	l.s.With("component", component).Errorf(format, args...)
}

// Sync flushes buffered log entries; call on shutdown.
func (l *ZapLogger) Sync() {
	_ = l.s.Sync()
}
