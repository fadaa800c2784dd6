package logger

import (
	"fmt"
	"log/slog"
)

const (
	LevelPanic = slog.Level(14)
	LevelFatal = slog.Level(16)
)

func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) != 0 || attr.Key != slog.LevelKey {
		return attr
	}
	l, ok := attr.Value.Any().(slog.Level)
	if !ok || l < LevelPanic {
		return attr
	}

	name, base := "FATAL", LevelFatal
	if l < LevelFatal {
		name, base = "PANIC", LevelPanic
	}
	if l != base {
		name = fmt.Sprintf("%s%+d", name, l-base)
	}
	return slog.String(attr.Key, name)
}
