package logging

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

type logrusLogger struct {
	entry *logrus.Entry
}

func (l *logrusLogger) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l *logrusLogger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Info(args ...any)                  { l.entry.Info(args...) }
func (l *logrusLogger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logrusLogger) Warn(args ...any)                  { l.entry.Warn(args...) }
func (l *logrusLogger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Error(args ...any)                 { l.entry.Error(args...) }
func (l *logrusLogger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
func (l *logrusLogger) Fatal(args ...any)                 { l.entry.Fatal(args...) }
func (l *logrusLogger) Fatalf(format string, args ...any) { l.entry.Fatalf(format, args...) }

var (
	baseMu     sync.RWMutex
	baseLogger = logrus.New()
)

// Configure sets the level of the shared base logger. Unknown or empty level
// strings leave the logrus default (info) in place.
func Configure(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}

	baseMu.Lock()
	defer baseMu.Unlock()
	baseLogger.SetLevel(parsed)
}

// NewLogger returns a Logger bound to ctx. A registered factory takes
// precedence over the shared logrus base logger.
func NewLogger(ctx context.Context) Logger {
	factory := GetLoggerFactory()
	if factory != nil {
		return factory.CreateLogger(ctx)
	}

	baseMu.RLock()
	defer baseMu.RUnlock()
	return &logrusLogger{entry: baseLogger.WithContext(ctx)}
}
