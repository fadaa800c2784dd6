package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type Config struct {
	WithRequestHeader    bool     `mapstructure:"request_header"`
	WithRequestQuery     bool     `mapstructure:"request_query"`
	Disable              bool     `mapstructure:"disable"` // drop INFO level entries
	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`

	// SkipPaths are never logged unless the request fails. Defaults to the health check and metrics endpoints.
	SkipPaths []string `mapstructure:"skip_paths"`
}

var defaultSkipPaths = []string{"/", "/metrics"}

// New logs one entry per request. Server errors are logged at ERROR,
// client errors at WARN, everything else at INFO. Errors returned by the
// handlers are passed to the app's error handler here.
func New(config Config) fiber.Handler {
	hidden := lo.SliceToMap(config.HiddenRequestHeaders, func(h string) (string, struct{}) {
		return strings.ToLower(strings.TrimSpace(h)), struct{}{}
	})
	skipPaths := config.SkipPaths
	if skipPaths == nil {
		skipPaths = defaultSkipPaths
	}
	skip := lo.SliceToMap(skipPaths, func(p string) (string, struct{}) { return p, struct{}{} })

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// handle the error here so the logged status is the one sent
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := levelOf(status, err)
		if level == slog.LevelInfo {
			if _, ok := skip[c.Path()]; ok || config.Disable {
				return nil
			}
		}

		attrs := []slog.Attr{
			slog.String("event", "api_request"),
			slog.Int64("latency", latency.Milliseconds()),
			slog.String("latencyHuman", latency.String()),
			slog.Attr{Key: "request", Value: slog.GroupValue(requestAttrs(c, config, hidden)...)},
			slog.Attr{Key: "response", Value: slog.GroupValue(
				slog.Int("status", status),
				slog.Int("length", len(c.Response().Body())),
			)},
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return nil
	}
}

func levelOf(status int, err error) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest || err != nil:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func requestAttrs(c *fiber.Ctx, config Config, hidden map[string]struct{}) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("method", c.Method()),
		slog.String("host", c.Hostname()),
		slog.String("path", c.Path()),
		slog.String("route", c.Route().Path),
		slog.String("ip", requestcontext.GetClientIP(c.UserContext())),
		slog.String("remoteIP", c.Context().RemoteIP().String()),
		slog.String("user-agent", string(c.Context().UserAgent())),
		slog.Any("params", c.AllParams()),
		slog.Int("length", len(c.Body())),
	}

	if config.WithRequestQuery {
		attrs = append(attrs, slog.String("query", string(c.Request().URI().QueryString())))
	}

	if config.WithRequestHeader {
		headers := make([]any, 0)
		for k, v := range c.GetReqHeaders() {
			if _, ok := hidden[strings.ToLower(k)]; ok {
				continue
			}
			headers = append(headers, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("header", headers...))
	}
	return attrs
}
