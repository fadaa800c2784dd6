// Package automaxprocs sizes GOMAXPROCS to the container CPU quota.
package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS from the Linux CPU quota, if any. An explicit
// GOMAXPROCS environment variable is honored.
func Init() error {
	log := logger.With(
		slogx.String("package", "automaxprocs"),
		slogx.Int("prev_maxprocs", runtime.GOMAXPROCS(0)),
	)

	_, err := maxprocs.Set(maxprocs.Min(1), maxprocs.Logger(func(format string, v ...any) {
		var attrs []slog.Attr
		if _, ok := utils.Optional(v); ok {
			attrs = append(attrs, slogx.Int("maxprocs", runtime.GOMAXPROCS(0)))
			if _, pinned := os.LookupEnv("GOMAXPROCS"); pinned {
				attrs = append(attrs, slog.Bool("from_env", true))
			}
		}
		log.LogAttrs(context.Background(), slog.LevelInfo, fmt.Sprintf(format, v...), attrs...)
	}))
	return errors.WithStack(err)
}
