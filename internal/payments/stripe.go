// Package payments talks to the payment gateway.
package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

const paymentMethodCard = "card"

var _ services.PaymentGateway = (*StripeGateway)(nil)

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	return NewStripeGatewayWithBackends(secretKey, nil)
}

// NewStripeGatewayWithBackends lets callers point the client at another API host.
func NewStripeGatewayWithBackends(secretKey string, backends *stripe.Backends) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, errors.New("PAYMENT_GATEWAY_KEY is required")
	}
	return &StripeGateway{api: client.New(secretKey, backends)}, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, p services.PaymentIntentParams) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(p.Amount),
		Currency:           stripe.String(p.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{paymentMethodCard}),
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// ErrNotConfigured is returned by Unconfigured for every call.
var ErrNotConfigured = errors.New("payment gateway not configured")

// Unconfigured stands in when PAYMENT_GATEWAY_KEY is unset.
type Unconfigured struct{}

func (Unconfigured) CreatePaymentIntent(context.Context, services.PaymentIntentParams) (string, error) {
	return "", ErrNotConfigured
}
