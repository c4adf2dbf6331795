package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"ocrapi/internal/logging"
)

// Logger logs each HTTP request as a JSON line through the process logger.
func Logger() fiber.Handler {
	return accessLog(logging.Default())
}

// LoggerWithWriter is Logger writing to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return accessLog(logging.New(w, loc))
}

// accessLog records request_id, method, path (no query string), status and
// latency in milliseconds once the handler chain has finished.
func accessLog(log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The global error handler has not run yet.
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		rid, _ := c.Locals(RequestIDLocalKey).(string)

		entry := logging.Fields{
			"msg":        "http_request",
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if status >= fiber.StatusInternalServerError {
			entry["level"] = "error"
		}
		log.Write(entry)

		return err
	}
}
