package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/dto"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

type AnnouncementHandler struct {
	Svc *services.AnnouncementService
}

// List godoc
// @Summary      List announcements
// @Description  Newest first
// @Tags         announcements
// @Produce      json
// @Success      200  {array}   models.Announcement
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	items, err := h.Svc.List(c.UserContext())
	if err != nil {
		return fail(c, err, "Announcement not found", "Error fetching announcements")
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Publish an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreateAnnouncementDTO  true  "Announcement"
// @Success      201   {object}  dto.InsertedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateAnnouncementDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	id, err := h.Svc.Create(c.UserContext(), services.CreateAnnouncementRequest{
		Title:     body.Title,
		Message:   body.Message,
		CreatedBy: body.CreatedBy,
	})
	if err != nil {
		return fail(c, err, "Announcement not found", "Error creating announcement")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InsertedResponse{InsertedID: id.Hex()})
}
