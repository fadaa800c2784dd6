// nolint: sloglint
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// DefaultLevel is used until Init is called.
const DefaultLevel = slog.LevelDebug

var (
	lvl = new(slog.LevelVar)

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: levelAttrReplacer,
	}))
)

func init() {
	lvl.Set(DefaultLevel)
	slog.SetDefault(logger)
}

type Config struct {
	// Output is "text" (default) or "json".
	Output string `mapstructure:"output"`

	// Debug lowers the level to DEBUG and adds source locations and error stack traces.
	Debug bool `mapstructure:"debug"`
}

// Init replaces the global logger, and slog's default, according to cfg.
func Init(cfg Config) error {
	logger = slog.New(newHandler(os.Stdout, cfg))
	slog.SetDefault(logger)
	return nil
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	options := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			return errorAttrReplacer(groups, levelAttrReplacer(groups, attr))
		},
	}

	var middlewares []middleware
	lvl.Set(slog.LevelInfo)
	if cfg.Debug {
		lvl.Set(slog.LevelDebug)
		options.AddSource = true
		middlewares = append(middlewares, middlewareErrorStackTrace())
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Output, "json") {
		handler = slog.NewJSONHandler(w, options)
	} else {
		handler = slog.NewTextHandler(w, options)
	}
	return newMiddlewareHandler(handler, middlewares...)
}

// SetLevel changes the minimum level and returns the previous one.
func SetLevel(level slog.Level) (old slog.Level) {
	old = lvl.Level()
	lvl.Set(level)
	return old
}

func With(args ...any) *slog.Logger {
	return logger.With(args...)
}

func Debug(msg string, args ...any) {
	emit(context.Background(), logger, slog.LevelDebug, msg, withArgs(args))
}

func Info(msg string, args ...any) {
	emit(context.Background(), logger, slog.LevelInfo, msg, withArgs(args))
}

func Warn(msg string, args ...any) {
	emit(context.Background(), logger, slog.LevelWarn, msg, withArgs(args))
}

func Error(msg string, args ...any) {
	emit(context.Background(), logger, slog.LevelError, msg, withArgs(args))
}

// Panic logs at LevelPanic, then panics with msg.
func Panic(msg string, args ...any) {
	emit(context.Background(), logger, LevelPanic, msg, withArgs(args))
	panic(msg)
}

// LogAttrs logs with the logger attached to ctx.
func LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	emit(ctx, FromContext(ctx), level, msg, func(r *slog.Record) { r.AddAttrs(attrs...) })
}

func withArgs(args []any) func(*slog.Record) {
	return func(r *slog.Record) { r.Add(args...) }
}

// emit must be called directly by an exported function of this package:
// the source location is taken at a fixed call depth.
func emit(ctx context.Context, l *slog.Logger, level slog.Level, msg string, add func(*slog.Record)) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, emit, exported caller

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	add(&r)
	_ = l.Handler().Handle(ctx, r)
}
