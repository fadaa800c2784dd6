// Package slogx has typed attribute constructors for the keys used across the service.
package slogx

import (
	"fmt"
	"log/slog"
)

const ErrorKey = "error"

// Error returns an empty attribute, which handlers ignore, when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(ErrorKey, err)
}

func String(key, value string) slog.Attr { return slog.String(key, value) }

// Stringer formats eagerly so the value is captured at the call site.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Uint64(key string, value uint64) slog.Attr { return slog.Uint64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }
