package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Maruf-rahman11/threadhub-web-server/internal/services"
)

func TestInvalidDetail(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Comment cannot be empty",
		invalidDetail(fmt.Errorf("%w: Comment cannot be empty", services.ErrInvalidRequest)))
	require.Equal(t, "Comment cannot be empty",
		invalidDetail(fmt.Errorf("wrap: %w", fmt.Errorf("%w: Comment cannot be empty", services.ErrInvalidRequest))))
	require.Equal(t, "plain", invalidDetail(errors.New("plain")))
}

func TestFail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid",
			err:      fmt.Errorf("%w: status is required", services.ErrInvalidRequest),
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"status is required"}`,
		},
		{
			name:     "not found",
			err:      fmt.Errorf("find: %w", services.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"message":"Thing not found"}`,
		},
		{
			name:     "store failure",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"message":"Boom"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(c *fiber.Ctx) error {
				return fail(c, tt.err, "Thing not found", "Boom")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestErrorHandler_NonFiberError(t *testing.T) {
	t.Parallel()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(*fiber.Ctx) error { return errors.New("raw") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.JSONEq(t, `{"message":"Server error"}`, string(body))
}
