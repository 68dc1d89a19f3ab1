// Package pdfthumb renders the first page of a PDF as a PNG thumbnail.
package pdfthumb

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
)

// DefaultScale doubles the page's native 72 DPI resolution.
const DefaultScale = 2.0

var ErrNoPages = errors.New("pdf has no pages")

// Extract renders page one of pdfPath at 72*scale DPI and writes it to outPath.
// Parent directories of outPath are created as needed.
func Extract(pdfPath, outPath string, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", pdfPath, err)
	}
	defer doc.Close()

	if doc.NumPage() < 1 {
		return ErrNoPages
	}

	img, err := doc.ImageDPI(0, 72*scale)
	if err != nil {
		return fmt.Errorf("render page 1: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
