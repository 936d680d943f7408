package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/pkg/logger"
)

// InjectLogger puts l into the request's user context.
func InjectLogger(l *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(logger.WithLogger(c.UserContext(), l))
		return c.Next()
	}
}
