package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Maruf-rahman11/threadhub-web-server/dto"
	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

const HeaderRequestID = "X-Request-Id"

type PaymentHandler struct {
	Svc *services.PaymentService
}

// CreateIntent godoc
// @Summary      Create a payment intent
// @Description  Card payment intent; amount in cents, currency defaults to usd
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        X-Request-Id  header    string                false  "Idempotency key"
// @Param        data          body      dto.PaymentIntentDTO  true   "Amount and currency"
// @Success      200           {object}  dto.PaymentIntentResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Failure      500           {object}  dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var body dto.PaymentIntentDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	key := c.Get(HeaderRequestID)
	if key == "" {
		key = uuid.NewString()
	}

	secret, err := h.Svc.CreatePaymentIntent(c.UserContext(), services.CreatePaymentIntentRequest{
		Amount:         body.Amount,
		Currency:       body.Currency,
		IdempotencyKey: key,
	})
	if err != nil {
		return fail(c, err, "Payment not found", "PaymentIntent creation failed")
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}
