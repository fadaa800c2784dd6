package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
)

type loggerKey struct{}

// FromContext returns the logger attached to ctx, falling back to the global one.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return logger
}

func NewContext(ctx context.Context, l *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

// WithContext attaches a logger carrying args to ctx.
func WithContext(ctx context.Context, args ...any) context.Context {
	return NewContext(ctx, FromContext(ctx).With(args...))
}

func DebugContext(ctx context.Context, msg string, args ...any) {
	emit(ctx, FromContext(ctx), slog.LevelDebug, msg, withArgs(args))
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	emit(ctx, FromContext(ctx), slog.LevelInfo, msg, withArgs(args))
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	emit(ctx, FromContext(ctx), slog.LevelWarn, msg, withArgs(args))
}

// ErrorContext logs err under the "error" key at ERROR.
func ErrorContext(ctx context.Context, msg string, err error, args ...any) {
	emit(ctx, FromContext(ctx), slog.LevelError, msg, withArgs(append(args, slogx.Error(err))))
}

func PanicContext(ctx context.Context, msg string, args ...any) {
	emit(ctx, FromContext(ctx), LevelPanic, msg, withArgs(args))
	panic(msg)
}

// FatalContext logs at LevelFatal and exits the process with status 1.
func FatalContext(ctx context.Context, msg string, args ...any) {
	emit(ctx, FromContext(ctx), LevelFatal, msg, withArgs(args))
	os.Exit(1)
}
