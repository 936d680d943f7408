// Package auth verifies identity tokens issued by an external provider.
package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the subset of a decoded identity token the API relies on.
type Claims struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
