package middleware

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/auth"
)

type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (*auth.Claims, error) {
	if token == "good" {
		return &auth.Claims{UID: "uid-1", Email: "ann@example.com"}, nil
	}
	return nil, auth.ErrInvalidToken
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(VerifyToken(stubVerifier{}))
	app.Get("/me", func(c *fiber.Ctx) error {
		uid, err := UIDFromLocals(c)
		if err != nil {
			return err
		}
		return c.SendString(uid + "|" + EmailFromLocals(c))
	})
	return app
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: fiber.StatusUnauthorized},
		{name: "scheme only", header: "Bearer", wantStatus: fiber.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: fiber.StatusUnauthorized},
		{name: "rejected", header: "Bearer bad", wantStatus: fiber.StatusForbidden},
		{name: "accepted", header: "Bearer good", wantStatus: fiber.StatusOK, wantBody: "uid-1|ann@example.com"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: fiber.StatusOK, wantBody: "uid-1|ann@example.com"},
	}

	app := newApp()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				require.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}

func TestUIDFromLocals_Unset(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := UIDFromLocals(c)
		require.True(t, errors.Is(err, fiber.ErrUnauthorized))
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
