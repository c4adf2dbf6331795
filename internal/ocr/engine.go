// Package ocr wraps the external text-recognition engines the service can
// delegate to. Engines receive an already decoded image and return the raw
// recognized text; trimming and validation belong to the caller.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"ocrapi/internal/config"
	"ocrapi/internal/logging"
)

const (
	EngineTesseract = "tesseract"
	EngineGosseract = "gosseract"
)

var (
	ErrUnknownEngine     = errors.New("unknown ocr engine")
	ErrEngineNotCompiled = errors.New("ocr engine not compiled in; rebuild with -tags gosseract")
)

// Engine recognizes text in an image.
type Engine interface {
	// Name identifies the engine in logs, metrics and stored records.
	Name() string
	// Recognize returns the text found in img, untrimmed.
	Recognize(ctx context.Context, img image.Image) (string, error)
	// Check reports whether the engine is usable right now.
	Check(ctx context.Context) error
}

// New builds the engine selected by cfg.Engine.
func New(cfg config.OCRConfig) (Engine, error) {
	switch cfg.Engine {
	case "", EngineTesseract:
		path, found := ResolveTesseract(cfg.TesseractCmd)
		if !found {
			logging.Default().Warn("tesseract_not_found", nil, logging.Fields{
				"component": "ocr",
				"cmd":       path,
			})
		}
		opts := []TesseractOption{WithLanguages(cfg.Languages...), WithPSM(cfg.PSM)}
		if cfg.TimeoutSec > 0 {
			opts = append(opts, WithTimeout(time.Duration(cfg.TimeoutSec)*time.Second))
		}
		return NewTesseract(path, opts...), nil
	case EngineGosseract:
		return NewGosseract(cfg.Languages, cfg.PSM)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Engine)
	}
}
