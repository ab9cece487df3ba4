package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish-be/internal/pkg/apperror"
)

func decodeEnvelope(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestErrorHandlerMiddlewareStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperror.NewNotFound("request not found"), fiber.StatusNotFound},
		{"unauthorized", apperror.NewUnauthorized("invalid credentials"), fiber.StatusUnauthorized},
		{"validation", apperror.NewValidation("title is required"), fiber.StatusBadRequest},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ErrorHandlerMiddleware())
			app.Get("/boom", func(ctx *fiber.Ctx) error {
				return tc.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			envelope := decodeEnvelope(t, resp.Body)
			assert.Equal(t, false, envelope["success"])
			assert.NotEmpty(t, envelope["message"])
		})
	}
}

func TestAppErrorHandlerBodyLimitReturnsValidationEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{
		BodyLimit:    64,
		ErrorHandler: AppErrorHandler,
	})
	app.Use(ErrorHandlerMiddleware())
	app.Post("/upload", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/upload", strings.NewReader(strings.Repeat("x", 256)))
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	envelope := decodeEnvelope(t, resp.Body)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "request body exceeds the allowed size", envelope["message"])
}
