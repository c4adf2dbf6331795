//go:build !gosseract

package ocr

// NewGosseract reports ErrEngineNotCompiled; the in-process engine needs
// libtesseract headers and the gosseract build tag.
func NewGosseract(languages []string, psm int) (Engine, error) {
	return nil, ErrEngineNotCompiled
}
