package ocr

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

const tesseractBinary = "tesseract"

// Swapped in tests.
var (
	lookPath = exec.LookPath
	statFile = os.Stat
	goos     = runtime.GOOS
)

// ResolveTesseract locates the tesseract executable. An explicit path wins;
// otherwise PATH is searched and, on Windows, the default installer
// locations are probed. When nothing is found the bare binary name is
// returned with found set to false so that the failure surfaces on use.
func ResolveTesseract(explicit string) (path string, found bool) {
	if explicit != "" {
		if p, err := lookPath(explicit); err == nil {
			return p, true
		}
		return explicit, false
	}
	if p, err := lookPath(tesseractBinary); err == nil {
		return p, true
	}
	if goos == "windows" {
		for _, candidate := range windowsFallbacks() {
			if fi, err := statFile(candidate); err == nil && !fi.IsDir() {
				return candidate, true
			}
		}
	}
	return tesseractBinary, false
}

func windowsFallbacks() []string {
	paths := []string{`C:\Program Files\Tesseract-OCR\tesseract.exe`}
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		paths = append(paths, filepath.Join(local, "Tesseract-OCR", "tesseract.exe"))
	}
	return paths
}
