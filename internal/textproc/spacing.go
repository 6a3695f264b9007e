package textproc

import "strings"

// ContinuationPrefix marks sub-word tokens that attach to the previous
// token without a space (BERT WordPiece convention).
const ContinuationPrefix = "##"

// Tokenizer splits text into sub-word tokens. Continuation tokens carry
// the ContinuationPrefix. Implementations may be unavailable at runtime;
// callers pass nil in that case.
type Tokenizer interface {
	Tokenize(text string) []string
}

// RepairSpacing re-inserts word boundaries into text whose spacing was
// destroyed by a bad extraction (glued words). Math-like spans are
// protected with placeholders before tokenizing and restored verbatim
// afterwards. With no tokenizer the input is returned unchanged; missing
// spacing is a quality problem, not an error.
func RepairSpacing(text string, tok Tokenizer) string {
	if tok == nil || strings.TrimSpace(text) == "" {
		return text
	}

	protected, spans := protectMathSpans(text)

	tokens := tok.Tokenize(protected)
	if len(tokens) == 0 {
		return text
	}

	var b strings.Builder
	for _, t := range tokens {
		if rest, ok := strings.CutPrefix(t, ContinuationPrefix); ok {
			b.WriteString(rest)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}

	out := b.String()
	out = spaceBefore.ReplaceAllString(out, "$1")
	out = spaceAfter.ReplaceAllString(out, "$1")
	out = wsRun.ReplaceAllString(out, " ")
	out = strings.TrimSpace(out)

	return restoreMathSpans(out, spans)
}
