package observability

import (
	"log/slog"
	"os"
)

// Logger is the narrow logging surface services depend on.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

type slogLogger struct {
	inner *slog.Logger
}

func NewLogger() Logger {
	return &slogLogger{inner: slog.New(slog.NewJSONHandler(os.Stdout, nil))}
}

func (l *slogLogger) Info(msg string) {
	l.inner.Info(msg)
}

func (l *slogLogger) Error(msg string) {
	l.inner.Error(msg)
}
