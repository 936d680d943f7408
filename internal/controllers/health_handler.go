package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/pkg/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	Store Pinger
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Server is running")
}

// Healthz godoc
// @Summary      Liveness and store reachability
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string  "ok"
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /healthz [get]
func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	if h.Store != nil {
		if err := h.Store.Ping(c.UserContext()); err != nil {
			logger.FromContext(c.UserContext()).Error("health check failed", "error", err)
			return fiber.NewError(fiber.StatusServiceUnavailable, "store unreachable")
		}
	}
	return c.SendString("ok")
}
