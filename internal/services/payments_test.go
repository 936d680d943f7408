package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentService_CreatePaymentIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreatePaymentIntentRequest
		setup   func(m *MockPaymentGateway)
		want    string
		wantErr error
	}{
		{
			name:    "zero amount",
			req:     CreatePaymentIntentRequest{Amount: 0},
			setup:   func(_ *MockPaymentGateway) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "bad currency",
			req:     CreatePaymentIntentRequest{Amount: 100, Currency: "dollars"},
			setup:   func(_ *MockPaymentGateway) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "default currency",
			req:  CreatePaymentIntentRequest{Amount: 500, IdempotencyKey: "k1"},
			setup: func(m *MockPaymentGateway) {
				m.EXPECT().CreatePaymentIntent(gomock.Any(), PaymentIntentParams{
					Amount: 500, Currency: "usd", IdempotencyKey: "k1",
				}).Return("pi_secret", nil)
			},
			want: "pi_secret",
		},
		{
			name: "currency lower-cased",
			req:  CreatePaymentIntentRequest{Amount: 500, Currency: "EUR"},
			setup: func(m *MockPaymentGateway) {
				m.EXPECT().CreatePaymentIntent(gomock.Any(), PaymentIntentParams{
					Amount: 500, Currency: "eur",
				}).Return("pi_eur", nil)
			},
			want: "pi_eur",
		},
		{
			name: "gateway failure",
			req:  CreatePaymentIntentRequest{Amount: 500},
			setup: func(m *MockPaymentGateway) {
				m.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return("", errors.New("card_declined"))
			},
			wantErr: errors.New("card_declined"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := NewMockPaymentGateway(ctrl)
			tt.setup(m)

			got, err := NewPaymentService(m).CreatePaymentIntent(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) {
					require.ErrorIs(t, err, ErrInvalidRequest)
				} else {
					require.NotErrorIs(t, err, ErrInvalidRequest)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
