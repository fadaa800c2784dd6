package requestcontext

import (
	"context"

	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

type requestIdKey struct{}

// WithRequestId reuses the id assigned by the requestid middleware, or the
// client's X-Request-ID header, and attaches it to the context logger.
func WithRequestId() Option {
	header := requestid.ConfigDefault.Header
	localsKey := requestid.ConfigDefault.ContextKey

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		id, _ := c.Locals(localsKey).(string)
		if id == "" {
			id = c.Get(header)
			if id == "" {
				id = fiberutils.UUID()
			}
			c.Set(header, id)
			c.Locals(localsKey, id)
		}

		ctx = context.WithValue(ctx, requestIdKey{}, id)
		return logger.WithContext(ctx, "requestId", id), nil
	}
}

// GetRequestId returns the request id stored by WithRequestId, or "".
func GetRequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}
