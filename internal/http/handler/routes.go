package handler

import (
	"database/sql"
	_ "embed"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ocrapi/internal/database"
	"ocrapi/internal/service"
)

const (
	// FormatJSON answers recognitions as {"filename","text"} JSON.
	FormatJSON = "json"
	// FormatText answers recognitions with the bare text/plain result.
	FormatText = "text"

	invalidTypeDetail = "Invalid file type. Only JPEG and PNG are supported."
)

//go:embed web/index.html
var indexHTML string

// ocrResponse is the JSON body of a successful recognition.
type ocrResponse struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when history is disabled; history routes are only
// registered when the service records recognitions.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.RecognitionService, defaultFormat string) {
	app.Get("/", Index())

	app.Get("/health", HealthCheck(db, svc))
	app.Get("/healthz", LivenessProbe())

	app.Post("/ocr/image", RecognizeImage(svc, defaultFormat))

	if svc.HistoryEnabled() {
		app.Get("/recognitions", ListRecognitions(svc))
		app.Get("/recognitions/:id", GetRecognition(svc))
		app.Get("/recognitions/:id/image", RecognitionImage(svc))
	}
}

// Index serves the upload demo page.
//
// @Summary Demo page
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func Index() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Type("html", "utf-8").SendString(indexHTML)
	}
}

// HealthCheck reports readiness: the OCR engine must be usable and, when
// configured, the database reachable.
//
// @Summary Readiness probe
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB, svc service.RecognitionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Check(c.UserContext()); err != nil {
			return writeErrorDetail(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable", err.Error())
		}
		if db != nil {
			if err := database.Ping(c.UserContext(), db); err != nil {
				return writeErrorDetail(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable", err.Error())
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RecognizeImage extracts text from an uploaded JPEG or PNG
// (multipart/form-data, field name: file).
//
// @Summary Extract text from an image
// @Accept mpfd
// @Produce json,plain
// @Param file formData file true "JPEG or PNG image"
// @Param format query string false "json or text"
// @Success 200 {object} ocrResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /ocr/image [post]
func RecognizeImage(svc service.RecognitionService, defaultFormat string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeErrorDetail(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required", "Field required: file")
		}

		ct := fh.Header.Get("Content-Type")
		if !service.IsSupportedContentType(ct) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", invalidTypeDetail)
		}

		f, err := fh.Open()
		if err != nil {
			return writeErrorDetail(c, fiber.StatusInternalServerError, "OCR_FAILED", "text recognition failed", err.Error())
		}
		defer f.Close()

		rec, err := svc.Recognize(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			if errors.Is(err, service.ErrUnsupportedType) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_TYPE", invalidTypeDetail)
			}
			return writeErrorDetail(c, fiber.StatusInternalServerError, "OCR_FAILED", "text recognition failed", err.Error())
		}

		if responseFormat(c, defaultFormat) == FormatText {
			return c.Type("txt", "utf-8").SendString(rec.Text)
		}
		return c.JSON(ocrResponse{Filename: rec.Filename, Text: rec.Text})
	}
}

// responseFormat picks the ?format= override when valid, else the default.
func responseFormat(c *fiber.Ctx, def string) string {
	switch f := c.Query("format"); f {
	case FormatJSON, FormatText:
		return f
	}
	if def == FormatText {
		return FormatText
	}
	return FormatJSON
}

// ListRecognitions returns recorded recognitions with limit & offset.
//
// @Summary List recognition history
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.RecognitionListResult
// @Failure 400 {object} errorPayload
// @Router /recognitions [get]
func ListRecognitions(svc service.RecognitionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetRecognition returns one recorded recognition.
//
// @Summary Get a recognition
// @Produce json
// @Param id path string true "recognition id"
// @Success 200 {object} model.Recognition
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /recognitions/{id} [get]
func GetRecognition(svc service.RecognitionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "recognition not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(rec)
	}
}

// RecognitionImage redirects to a presigned download of the archived upload.
//
// @Summary Download the archived upload
// @Param id path string true "recognition id"
// @Success 307
// @Failure 404 {object} errorPayload
// @Router /recognitions/{id}/image [get]
func RecognitionImage(svc service.RecognitionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.ImageURL(c.UserContext(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "recognition not found")
			case errors.Is(err, service.ErrNotArchived):
				return writeError(c, fiber.StatusNotFound, "NOT_ARCHIVED", "upload was not archived")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Redirect(u, fiber.StatusTemporaryRedirect)
	}
}
