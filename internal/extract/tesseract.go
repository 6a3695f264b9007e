package extract

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Tesseract shells out to the tesseract binary and reads its TSV output
// so word-level confidences come back alongside the text.
type Tesseract struct {
	Lang    string
	Timeout time.Duration
}

func NewTesseract(lang string) *Tesseract {
	if lang == "" {
		lang = "eng"
	}
	return &Tesseract{Lang: lang, Timeout: 30 * time.Second}
}

// FromImage OCRs a single image file. Confidence is the mean of the
// per-word confidences tesseract reports (rows with conf -1 carry no
// confidence data and are skipped).
func (t *Tesseract) FromImage(ctx context.Context, path string) (Extraction, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return Extraction{}, errors.New("tesseract not found in PATH")
	}

	args := []string{path, "stdout"}
	if t.Lang != "" {
		args = append(args, "-l", t.Lang)
	}
	args = append(args, "tsv")

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "tesseract", args...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Extraction{}, errors.New(strings.TrimSpace(stderr.String()))
	}

	text, conf := parseTSV(out.String())
	return Extraction{Text: text, Confidence: conf, Pages: []string{text}}, nil
}

// parseTSV pulls words and their confidences out of tesseract TSV
// output. Layout: 12 columns, conf at index 10, text at index 11.
func parseTSV(tsv string) (string, float64) {
	var words []string
	var confSum float64
	confCount := 0

	lines := strings.Split(tsv, "\n")
	for i, line := range lines {
		if i == 0 { // header row
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 12 {
			continue
		}
		word := strings.TrimSpace(cols[11])
		if word == "" {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil {
			continue
		}
		words = append(words, word)
		if conf >= 0 {
			confSum += conf
			confCount++
		}
	}

	avg := 0.0
	if confCount > 0 {
		avg = confSum / float64(confCount)
	}
	return strings.Join(words, " "), avg
}
