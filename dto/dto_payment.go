package dto

type PaymentIntentDTO struct {
	// Amount in the smallest currency unit (cents).
	Amount   int64  `json:"amount" example:"1999"`
	Currency string `json:"currency" example:"usd"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret" example:"pi_123_secret_456"`
}
