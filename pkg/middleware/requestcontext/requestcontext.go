// Package requestcontext copies per-request values (request id, client IP)
// from the fiber context into the request's context.Context.
package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// Option enriches the request context. Returning a *Rejection aborts the request
// with the rejection's status; any other error is answered with a 500.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// Rejection is returned by an Option to refuse a request.
type Rejection struct {
	Status  int
	Code    string
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for i, opt := range opts {
			next, err := opt(ctx, c)
			if err != nil {
				return reject(ctx, c, i, err)
			}
			ctx = next
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func reject(ctx context.Context, c *fiber.Ctx, index int, err error) error {
	var rejection *Rejection
	if !errors.As(err, &rejection) {
		logger.ErrorContext(ctx, "failed to build request context", err,
			slog.String("module", "requestcontext"),
			slog.Int("option", index),
		)
		rejection = &Rejection{Status: http.StatusInternalServerError, Message: "internal server error"}
	}

	body := fiber.Map{"error": rejection.Message}
	if rejection.Code != "" {
		body["code"] = rejection.Code
	}
	return errors.WithStack(c.Status(rejection.Status).JSON(body))
}
