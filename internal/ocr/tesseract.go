package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"ocrapi/internal/imaging"
)

// Tesseract runs the tesseract command line tool, streaming a PNG encoding
// of the image on stdin and reading the recognized text from stdout.
type Tesseract struct {
	cmd       string
	languages []string
	psm       int
	timeout   time.Duration
}

// TesseractOption configures a Tesseract engine.
type TesseractOption func(*Tesseract)

// WithLanguages sets the -l language list, joined with "+".
func WithLanguages(langs ...string) TesseractOption {
	return func(t *Tesseract) { t.languages = append([]string(nil), langs...) }
}

// WithPSM sets the page segmentation mode. Zero keeps the tesseract default.
func WithPSM(psm int) TesseractOption {
	return func(t *Tesseract) { t.psm = psm }
}

// WithTimeout bounds a single recognition call.
func WithTimeout(d time.Duration) TesseractOption {
	return func(t *Tesseract) { t.timeout = d }
}

// NewTesseract constructs a CLI-backed engine for the executable at cmd.
func NewTesseract(cmd string, opts ...TesseractOption) *Tesseract {
	t := &Tesseract{cmd: cmd}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tesseract) Name() string { return EngineTesseract }

// Command returns the executable path the engine invokes.
func (t *Tesseract) Command() string { return t.cmd }

func (t *Tesseract) args() []string {
	args := []string{"stdin", "stdout"}
	if len(t.languages) > 0 {
		args = append(args, "-l", strings.Join(t.languages, "+"))
	}
	if t.psm > 0 {
		args = append(args, "--psm", strconv.Itoa(t.psm))
	}
	return args
}

// Recognize performs OCR on img.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) (string, error) {
	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, t.cmd, t.args()...)
	cmd.Stdin = bytes.NewReader(data)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("tesseract: %w", ctxErr)
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s is not installed or it's not in your PATH: %w", t.cmd, err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("tesseract failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("tesseract failed: %w", err)
	}
	return stdout.String(), nil
}

// Check verifies the executable can be found.
func (t *Tesseract) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := lookPath(t.cmd); err != nil {
		return fmt.Errorf("tesseract executable: %w", err)
	}
	return nil
}
