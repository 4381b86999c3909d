package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestContext gives every request a context that is cancelled after
// timeout or when the handler returns, whichever comes first. Database
// sessions opened from c.UserContext() inherit the deadline.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
