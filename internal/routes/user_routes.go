package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/controllers"
)

func SetupRoutesUser(app *fiber.App, h *controllers.UserHandler, protect fiber.Handler) {
	users := app.Group("/users")
	users.Post("/", protect, h.Upsert)
	users.Patch("/update-status/:email", protect, h.UpdateStatus)
	users.Get("/:email", h.Get)
}
