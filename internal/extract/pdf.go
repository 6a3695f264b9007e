package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// fromPDF reads the embedded text layer of a typed PDF. Pages whose
// text cannot be read are skipped rather than failing the document.
// Typed text needs no OCR, so confidence is reported as 100.
func fromPDF(path string) (Extraction, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Extraction{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		pages = append(pages, content)
	}
	if len(pages) == 0 {
		return Extraction{}, fmt.Errorf("no extractable text found in pdf")
	}

	return Extraction{
		Text:       strings.Join(pages, PageBreak),
		Confidence: 100.0,
		Pages:      pages,
	}, nil
}
