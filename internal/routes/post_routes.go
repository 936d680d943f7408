package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/controllers"
)

func SetupRoutesPost(app *fiber.App, h *controllers.PostHandler, protect fiber.Handler) {
	posts := app.Group("/posts")
	posts.Get("/", h.List)
	// /id/:id must be registered before /:email
	posts.Get("/id/:id", h.GetByID)
	posts.Get("/:email", h.ListByAuthor)
	posts.Post("/", protect, h.Create)
	posts.Patch("/upvote/:id", protect, h.Upvote)
	posts.Patch("/downvote/:id", protect, h.Downvote)
	posts.Post("/comment/:id", protect, h.Comment)
}
