package extract

import (
	"context"
	"math"
	"strings"
	"testing"
)

func tsvLine(conf, text string) string {
	// level page block par line word left top width height conf text
	return strings.Join([]string{"5", "1", "1", "1", "1", "1", "0", "0", "10", "10", conf, text}, "\t")
}

func TestParseTSV(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		tsvLine("90", "hello"),
		tsvLine("70", "world"),
		tsvLine("-1", ""),   // block row, no text
		tsvLine("-1", "x"),  // no confidence data, word still kept
		tsvLine("50", "  "), // whitespace-only text dropped
	}, "\n")

	text, conf := parseTSV(tsv)
	if text != "hello world x" {
		t.Errorf("text = %q", text)
	}
	if math.Abs(conf-80.0) > 1e-9 {
		t.Errorf("conf = %v, want 80.0", conf)
	}
}

func TestParseTSVEmpty(t *testing.T) {
	text, conf := parseTSV("header only\n")
	if text != "" || conf != 0.0 {
		t.Errorf("got %q, %v", text, conf)
	}
}

func TestServiceRejectsUnknownExtension(t *testing.T) {
	s := NewService(nil)
	if _, err := s.FromFile(context.Background(), "notes.txt"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestServiceRejectsImageWithoutOCR(t *testing.T) {
	s := NewService(nil)
	if _, err := s.FromFile(context.Background(), "scan.png"); err == nil {
		t.Fatal("expected error when OCR is not configured")
	}
}
