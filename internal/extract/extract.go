// Package extract turns uploaded answer-sheet files into plain text.
// Typed PDFs go through the embedded-text reader; images go through
// Tesseract OCR. Confidence is only meaningful on the OCR path.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// PageBreak joins per-page texts in multi-page extractions.
const PageBreak = "\n\n--- PAGE BREAK ---\n\n"

// Extraction is the result of pulling text out of one file.
type Extraction struct {
	Text       string
	Confidence float64 // 0-100; 100 for typed (non-OCR) sources
	Pages      []string
}

// Service dispatches by file extension. OCR may be nil, in which case
// image files are rejected.
type Service struct {
	ocr *Tesseract
}

func NewService(ocr *Tesseract) *Service { return &Service{ocr: ocr} }

func (s *Service) FromFile(ctx context.Context, path string) (Extraction, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return fromPDF(path)
	case ".png", ".jpg", ".jpeg", ".tiff", ".bmp", ".gif":
		if s.ocr == nil {
			return Extraction{}, fmt.Errorf("ocr not configured, cannot extract %s", ext)
		}
		return s.ocr.FromImage(ctx, path)
	default:
		return Extraction{}, fmt.Errorf("unsupported file format: %s", ext)
	}
}
