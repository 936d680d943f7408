package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/controllers"
)

// Handlers bundles every controller the router mounts.
type Handlers struct {
	Posts         *controllers.PostHandler
	Users         *controllers.UserHandler
	Announcements *controllers.AnnouncementHandler
	Payments      *controllers.PaymentHandler
	Health        *controllers.HealthHandler
}

// Register mounts all routes. protect guards every mutating route.
func Register(app *fiber.App, h Handlers, protect fiber.Handler) {
	app.Get("/", h.Health.Root)
	app.Get("/healthz", h.Health.Healthz)
	app.Get("/docs/*", swagger.HandlerDefault)

	SetupRoutesPost(app, h.Posts, protect)
	SetupRoutesUser(app, h.Users, protect)
	SetupRoutesAnnouncement(app, h.Announcements, protect)
	SetupRoutesPayment(app, h.Payments, protect)
}
