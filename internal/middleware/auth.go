package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/auth"
	"github.com/Maruf-rahman11/threadhub-web-server/pkg/logger"
)

const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// VerifyToken requires a bearer token accepted by v.
// No header or no token: 401. Rejected token: 403.
func VerifyToken(v auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
		}

		parts := strings.Fields(header)
		if len(parts) < 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
		}

		claims, err := v.Verify(c.UserContext(), parts[1])
		if err != nil {
			logger.FromContext(c.UserContext()).Warn("token rejected", "path", c.Path(), "error", err)
			return fiber.NewError(fiber.StatusForbidden, "forbidden access")
		}

		c.Locals(LocalUserID, claims.UID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

// Passthrough is used in place of VerifyToken when auth is disabled.
func Passthrough() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
