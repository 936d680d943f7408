package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/controllers"
)

func SetupRoutesPayment(app *fiber.App, h *controllers.PaymentHandler, protect fiber.Handler) {
	app.Post("/create-payment-intent", protect, h.CreateIntent)
}
