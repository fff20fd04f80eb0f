// Package logging is a thin structured logging layer over logrus.
package logging

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields is an alias for logrus.Fields.
type Fields = logrus.Fields

// Logger is the logging surface used across the module.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

// CorrelationIDKey is the context key holding the correlation id.
const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

type logger struct {
	entry *logrus.Entry
}

// L is the process logger.
var L Logger = New(logrus.StandardLogger())

// New wraps a logrus logger.
func New(l *logrus.Logger) Logger { return &logger{entry: logrus.NewEntry(l)} }

// Setup configures the standard logger level and format ("text" or "json")
// and resets L on top of it.
func Setup(level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	std := logrus.StandardLogger()
	std.SetLevel(lvl)
	if out != nil {
		std.SetOutput(out)
	}
	switch format {
	case "json":
		std.SetFormatter(&logrus.JSONFormatter{})
	default:
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, PadLevelText: true})
	}
	L = New(std)
	return nil
}

// Discard returns a logger that writes nothing, for tests.
func Discard() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return New(l)
}

func (l *logger) WithField(key string, value any) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(fields)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext adds the correlation id found in ctx, if any.
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if id := CorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

func (l *logger) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...any)                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...any)                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...any)                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// WithCorrelationID stores a fresh correlation id in the context.
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

// CorrelationID returns the correlation id of ctx, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}
