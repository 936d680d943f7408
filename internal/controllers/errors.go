package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Maruf-rahman11/threadhub-web-server/dto"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
	"github.com/Maruf-rahman11/threadhub-web-server/pkg/logger"
)

const msgServerError = "Server error"

// fail maps a service error to its HTTP form. Anything that is neither a
// validation nor a not-found error is logged and answered with serverMsg.
func fail(c *fiber.Ctx, err error, notFoundMsg, serverMsg string) error {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		return fiber.NewError(fiber.StatusBadRequest, invalidDetail(err))
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	default:
		logger.FromContext(c.UserContext()).Error("request failed",
			"method", c.Method(), "path", c.Path(), "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, serverMsg)
	}
}

func invalidDetail(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, services.ErrInvalidRequest.Error()+": "); i >= 0 {
		return msg[i+len(services.ErrInvalidRequest.Error())+2:]
	}
	return msg
}

// ErrorHandler renders every error as {"message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		logger.FromContext(c.UserContext()).Error("unhandled error",
			"method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(dto.ErrorResponse{Message: msg})
}
