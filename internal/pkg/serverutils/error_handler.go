package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"parish-be/internal/pkg/apperror"
)

// AppErrorHandler renders errors fiber raises before a handler runs, most
// notably a request body over the configured limit, in the same JSON
// envelope the middleware produces. An oversize body is reported as a 400
// so callers see the same status the upload size check returns.
func AppErrorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	if status == fiber.StatusRequestEntityTooLarge {
		status = fiber.StatusBadRequest
		message = "request body exceeds the allowed size"
	}

	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// JSON envelope: 404 for unknown resources, 401 for rejected credentials,
// 400 for rejected input, the declared status for fiber errors, 500
// otherwise.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		switch {
		case apperror.IsNotFound(err):
			status = fiber.StatusNotFound
			message = err.Error()
		case apperror.IsUnauthorized(err):
			status = fiber.StatusUnauthorized
			message = err.Error()
		case apperror.IsValidation(err):
			status = fiber.StatusBadRequest
			message = err.Error()
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
}
