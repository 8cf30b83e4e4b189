package logx

import "log/slog"

// SlogAdapter backs the Logger interface with a *slog.Logger.
type SlogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps l into a Logger.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &SlogAdapter{l: l}
}

func (a *SlogAdapter) Debug(msg string, fields ...Field) { a.l.Debug(msg, toSlogArgs(fields)...) }
func (a *SlogAdapter) Info(msg string, fields ...Field)  { a.l.Info(msg, toSlogArgs(fields)...) }
func (a *SlogAdapter) Warn(msg string, fields ...Field)  { a.l.Warn(msg, toSlogArgs(fields)...) }
func (a *SlogAdapter) Error(msg string, fields ...Field) { a.l.Error(msg, toSlogArgs(fields)...) }

// With returns a Logger that attaches fields to every entry it emits.
func (a *SlogAdapter) With(fields ...Field) Logger {
	return &SlogAdapter{l: a.l.With(toSlogArgs(fields)...)}
}

// Sync is a no-op; slog writes through on every call.
func (a *SlogAdapter) Sync() error { return nil }

func toSlogArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}
