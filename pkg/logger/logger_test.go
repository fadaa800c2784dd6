package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := newMiddlewareHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: errorAttrReplacer}),
		middlewareErrorStackTrace(),
	)
	log := slog.New(handler).With(slog.String("module", "snap"))

	log.ErrorContext(context.Background(), "mint failed", slogx.Error(errors.New("boom")))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "mint failed", record["msg"])
	assert.Equal(t, "snap", record["module"])
	assert.Equal(t, "boom", record[slogx.ErrorKey])
	assert.Contains(t, record[ErrorVerboseKey], "boom")
	assert.NotEmpty(t, record[ErrorStackTraceKey])
}

func TestMiddlewareHandlerWithoutMiddlewares(t *testing.T) {
	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	assert.Same(t, inner, newMiddlewareHandler(inner))
}
