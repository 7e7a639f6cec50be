package ocr

import "errors"

// ErrNoText signals that Tesseract produced no usable text lines.
var ErrNoText = errors.New("no text recognized")
