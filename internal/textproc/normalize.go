package textproc

import (
	"regexp"
	"strings"
)

var (
	wsRun       = regexp.MustCompile(`\s+`)
	hwsRun      = regexp.MustCompile(`[ \t]+`)
	cidArtifact = regexp.MustCompile(`\(cid:\d+\)`)
	blankLines  = regexp.MustCompile(`\n\s*\n`)
	spaceBefore = regexp.MustCompile(`\s+([.,;:!?)])`)
	spaceAfter  = regexp.MustCompile(`([(])\s+`)
	longDots    = regexp.MustCompile(`[.]{3,}`)
	nonWord     = regexp.MustCompile(`[^\w\s.,;:!?()\-]`)
)

// Preprocess lowercases, collapses whitespace runs and trims. Idempotent.
func Preprocess(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(strings.TrimSpace(text))
	return wsRun.ReplaceAllString(text, " ")
}

// CleanExtracted strips OCR/PDF artifacts from extracted text: (cid:N)
// renderer tags, form feeds, runaway ellipses, stray spacing around
// punctuation. Alphanumeric content passes through untouched.
func CleanExtracted(text string) string {
	if text == "" {
		return ""
	}
	text = cidArtifact.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\f", "")

	// Collapse runs of spaces/tabs but keep line breaks: the segmenter's
	// line-scan fallback needs them.
	text = hwsRun.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n\n")

	text = spaceBefore.ReplaceAllString(text, "$1")
	text = spaceAfter.ReplaceAllString(text, "$1")

	text = longDots.ReplaceAllString(text, "...")

	return strings.TrimSpace(text)
}

var contractions = []struct{ from, to string }{
	{"won't", "will not"},
	{"can't", "cannot"},
	{"n't", " not"},
	{"'s", " is"},
	{"'re", " are"},
	{"'ll", " will"},
}

// Normalize prepares text for comparison: lowercase, contraction
// expansion, punctuation reduced to basic sentence structure.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, c := range contractions {
		text = strings.ReplaceAll(text, c.from, c.to)
	}
	text = nonWord.ReplaceAllString(text, "")
	text = wsRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
