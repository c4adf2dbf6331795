//go:build gosseract

package ocr

import (
	"context"
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"

	"ocrapi/internal/imaging"
)

// Gosseract runs recognition in-process through libtesseract.
type Gosseract struct {
	languages []string
	psm       int
}

// NewGosseract constructs a libtesseract-backed engine.
func NewGosseract(languages []string, psm int) (Engine, error) {
	return &Gosseract{languages: append([]string(nil), languages...), psm: psm}, nil
}

func (g *Gosseract) Name() string { return EngineGosseract }

// Recognize performs OCR on img with a fresh client per call; clients are not
// safe for concurrent use.
func (g *Gosseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	c := gosseract.NewClient()
	defer c.Close()

	if len(g.languages) > 0 {
		if err := c.SetLanguage(g.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if g.psm > 0 {
		if err := c.SetPageSegMode(gosseract.PageSegMode(g.psm)); err != nil {
			return "", fmt.Errorf("set psm: %w", err)
		}
	}
	if err := c.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

func (g *Gosseract) Check(ctx context.Context) error {
	if gosseract.Version() == "" {
		return fmt.Errorf("libtesseract unavailable")
	}
	return ctx.Err()
}
