package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"ocrapi/docs"
)

// Swagger serves the UI and doc.json. host is fixed once here; when empty the
// document carries no host and the UI targets whichever origin served it.
// docs.SwaggerInfo is not written while requests are served.
func Swagger(host string) fiber.Handler {
	docs.SwaggerInfo.Host = host
	return swagger.HandlerDefault
}
