package textproc

import (
	"fmt"
	"regexp"
	"strings"
)

// mathSpan matches spans that must survive spacing repair byte for byte:
// PDF (cid:N) artifacts, f(x)=... forms, scientific notation like 2.0×10-12,
// operator/exponent expressions like x^2-1, and arrow forms like R→R.
var mathSpan = regexp.MustCompile(
	`(\(cid:\d+\))` +
		`|([A-Za-z]\([^)]*\)\s*=\s*[^,\s]+)` +
		`|([0-9]+(?:\.[0-9]+)?\s*[×xX]\s*10\s*[-−]?\s*\d+)` +
		`|([A-Za-z0-9]+(?:\^|\*|/|=|\+|[-−])[A-Za-z0-9^*/=+−-]+)` +
		`|([A-Za-z]\s*[→\-]\s*[A-Za-z])`,
)

// protectMathSpans replaces every math-like span with an opaque placeholder
// and returns the spans in placeholder order. Placeholders carry no
// punctuation so a sub-word tokenizer cannot split them at symbol
// boundaries.
func protectMathSpans(text string) (string, []string) {
	var spans []string
	protected := mathSpan.ReplaceAllStringFunc(text, func(m string) string {
		spans = append(spans, m)
		return fmt.Sprintf(" MATHPLACEHOLDER%d ", len(spans)-1)
	})
	return protected, spans
}

// restoreMathSpans substitutes the original spans back, in order.
func restoreMathSpans(text string, spans []string) string {
	for i, span := range spans {
		text = strings.Replace(text, fmt.Sprintf("MATHPLACEHOLDER%d", i), span, 1)
	}
	return text
}
