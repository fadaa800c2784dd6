package logger

import (
	"context"
	"log/slog"
)

type (
	handleFunc func(context.Context, slog.Record) error
	middleware func(handleFunc) handleFunc
)

// middlewareHandler runs records through middlewares before the wrapped handler.
// The chain is composed once per handler, not per record.
type middlewareHandler struct {
	next        slog.Handler
	middlewares []middleware
	handle      handleFunc
}

func newMiddlewareHandler(next slog.Handler, middlewares ...middleware) slog.Handler {
	if len(middlewares) == 0 {
		return next
	}
	h := &middlewareHandler{next: next, middlewares: middlewares, handle: next.Handle}
	for i := len(middlewares) - 1; i >= 0; i-- {
		h.handle = middlewares[i](h.handle)
	}
	return h
}

func (h *middlewareHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *middlewareHandler) Handle(ctx context.Context, rec slog.Record) error {
	return h.handle(ctx, rec)
}

func (h *middlewareHandler) WithGroup(group string) slog.Handler {
	return newMiddlewareHandler(h.next.WithGroup(group), h.middlewares...)
}

func (h *middlewareHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newMiddlewareHandler(h.next.WithAttrs(attrs), h.middlewares...)
}
