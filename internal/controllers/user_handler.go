package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/dto"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/middleware"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

const msgUserNotFound = "User not found"

type UserHandler struct {
	Svc *services.UserService
}

// Get godoc
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  models.User
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /users/{email} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.Svc.GetUser(c.UserContext(), c.Params("email"))
	if err != nil {
		return fail(c, err, msgUserNotFound, msgServerError)
	}
	return c.JSON(user)
}

// Upsert godoc
// @Summary      Register or refresh a user on sign-in
// @Description  Email defaults to the token's email claim
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.UpsertUserDTO  true  "Profile"
// @Success      200   {object}  models.UpdateResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	var body dto.UpsertUserDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Email == "" {
		body.Email = middleware.EmailFromLocals(c)
	}
	res, err := h.Svc.UpsertUser(c.UserContext(), services.UpsertUserRequest{
		Email: body.Email,
		Name:  body.Name,
		Photo: body.Photo,
	})
	if err != nil {
		return fail(c, err, msgUserNotFound, "Failed to save user")
	}
	return c.JSON(res)
}

// UpdateStatus godoc
// @Summary      Update a user's membership status
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string               true  "User email"
// @Param        data   body      dto.UpdateStatusDTO  true  "New status"
// @Success      200    {object}  models.UpdateResult
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /users/update-status/{email} [patch]
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateStatusDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	res, err := h.Svc.UpdateStatus(c.UserContext(), services.UpdateUserStatusRequest{
		Email:  c.Params("email"),
		Status: body.Status,
	})
	if err != nil {
		return fail(c, err, msgUserNotFound, "Failed to update user status")
	}
	return c.JSON(res)
}
