package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UIDFromLocals returns the user_id set by VerifyToken.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals(LocalUserID).(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

// EmailFromLocals returns the token email, empty when the provider omitted it.
func EmailFromLocals(c *fiber.Ctx) string {
	email, _ := c.Locals(LocalEmail).(string)
	return email
}
