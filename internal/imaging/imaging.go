// Package imaging prepares uploaded pictures for text recognition: decode,
// single-channel grayscale conversion and lossless re-encoding.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultMaxPixels is the decoded-size cap applied when none is configured.
const DefaultMaxPixels = 89478485

var (
	// ErrEmpty is returned when there are no bytes to decode.
	ErrEmpty = errors.New("empty image data")
	// ErrTooLarge is returned when the declared dimensions exceed the pixel cap.
	ErrTooLarge = errors.New("image too large")
)

// Decode parses JPEG or PNG bytes. It returns the decoded image and the
// format name reported by the registered decoder. The header is read first
// and images declaring more than maxPixels pixels are rejected before any
// pixel buffer is allocated; maxPixels <= 0 disables the check.
func Decode(data []byte, maxPixels int64) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmpty
	}
	if maxPixels > 0 {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("cannot identify image file: %w", err)
		}
		if px := int64(cfg.Width) * int64(cfg.Height); px > maxPixels {
			return nil, "", fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, maxPixels)
		}
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("cannot identify image file: %w", err)
	}
	return img, format, nil
}

// Grayscale converts img to 8-bit luminance. Images that are already
// *image.Gray are returned as is. Alpha is ignored: non-premultiplied
// sources (NRGBA, NRGBA64 and paletted PNGs) take luma from their stored
// colour, so a transparent white background stays white.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.Gray:
		return src
	case *image.NRGBA:
		gray := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := src.NRGBAAt(x, y)
				gray.SetGray(x, y, luma(widen(c.R), widen(c.G), widen(c.B)))
			}
		}
		return gray
	case *image.NRGBA64:
		gray := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := src.NRGBA64At(x, y)
				gray.SetGray(x, y, luma(uint32(c.R), uint32(c.G), uint32(c.B)))
			}
		}
		return gray
	case *image.Paletted:
		lut := make([]color.Gray, len(src.Palette))
		for i, pc := range src.Palette {
			lut[i] = paletteLuma(pc)
		}
		gray := image.NewGray(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if i := int(src.ColorIndexAt(x, y)); i < len(lut) {
					gray.SetGray(x, y, lut[i])
				}
			}
		}
		return gray
	}

	gray := image.NewGray(b)
	draw.Draw(gray, b, img, b.Min, draw.Src)
	return gray
}

func paletteLuma(c color.Color) color.Gray {
	switch pc := c.(type) {
	case color.NRGBA:
		return luma(widen(pc.R), widen(pc.G), widen(pc.B))
	case color.NRGBA64:
		return luma(uint32(pc.R), uint32(pc.G), uint32(pc.B))
	}
	return color.GrayModel.Convert(c).(color.Gray)
}

func widen(v uint8) uint32 { return uint32(v) | uint32(v)<<8 }

// luma uses the 16-bit ITU-R 601 weights of color.GrayModel.
func luma(r, g, b uint32) color.Gray {
	return color.Gray{Y: uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 24)}
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
