package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/controllers"
)

func SetupRoutesAnnouncement(app *fiber.App, h *controllers.AnnouncementHandler, protect fiber.Handler) {
	a := app.Group("/announcements")
	a.Get("/", h.List)
	a.Post("/", protect, h.Create)
}
