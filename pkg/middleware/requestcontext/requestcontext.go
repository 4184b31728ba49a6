// Package requestcontext copies request scoped values (request id, client ip) into the request's user context
// so handlers and the logger can read them.
package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// Option extracts a value from the request into ctx.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// rejectError aborts the request with the given status.
type rejectError struct {
	status  int
	message string
}

func (r rejectError) Error() string {
	return r.message
}

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				if rErr := (rejectError{}); errors.As(err, &rErr) {
					return errors.WithStack(c.Status(rErr.status).JSON(fiber.Map{"error": rErr.message}))
				}

				logger.ErrorContext(ctx, "failed to extract request context",
					slogx.Error(err),
					slog.String("event", "requestcontext/error"),
					slog.Int("optionIndex", i),
				)
				return errors.WithStack(c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"}))
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
