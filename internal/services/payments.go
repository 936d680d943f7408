package services

import (
	"context"
	"fmt"
	"strings"
)

const DefaultCurrency = "usd"

type PaymentIntentParams struct {
	Amount         int64
	Currency       string
	IdempotencyKey string
}

//go:generate mockgen -source=payments.go -destination=./payment_gateway_mock.go -package=services
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (clientSecret string, err error)
}

type PaymentService struct {
	gateway PaymentGateway
}

func NewPaymentService(gateway PaymentGateway) *PaymentService {
	return &PaymentService{gateway: gateway}
}

func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (string, error) {
	req.Currency = strings.ToLower(strings.TrimSpace(req.Currency))
	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: amount must be a positive integer and currency a 3-letter code", ErrInvalidRequest)
	}
	secret, err := s.gateway.CreatePaymentIntent(ctx, PaymentIntentParams{
		Amount:         req.Amount,
		Currency:       req.Currency,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}
