// Package ocr is the production adapter behind the scanner's OCREngine and
// Preprocessor interfaces: Tesseract via gosseract for text, imaging-based
// pixel transforms and template matching for image cleanup.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Engine runs Tesseract over preprocessed images. A fresh client is created
// per call so the cgo state is never shared between scans.
type Engine struct {
	Language string
}

// NewEngine returns an engine using the English model.
func NewEngine() *Engine {
	return &Engine{Language: "eng"}
}

// ScanLines OCRs the image at path and returns its ordered non-empty text
// lines. Single-block segmentation matches how the game lays out the stat
// panels.
func (e *Engine) ScanLines(path string) ([]string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage(e.Language)
	_ = client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK)
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("ocr error: %w", err)
	}
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return nil, ErrNoText
	}
	return lines, nil
}
