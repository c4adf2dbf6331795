package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ocrapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
// Detail is what the demo page shows to the user.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Detail    string        `json:"detail"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response whose detail equals message.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_FILE_TYPE", "NOT_FOUND", "OCR_FAILED")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorDetail(c, status, code, message, message)
}

// writeErrorDetail is writeError with a separate detail, used to surface
// processing failures to the caller.
func writeErrorDetail(c *fiber.Ctx, status int, code, message, detail string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Detail:    detail,
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "upload exceeds the size limit")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
