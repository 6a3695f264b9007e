package nlp

import (
	"bufio"
	"os"
	"strings"
	"unicode"
)

// WordPiece is a greedy longest-match sub-word tokenizer over a plain
// vocabulary file (one token per line, continuation entries prefixed
// "##"). It is only asked to find word boundaries in glued lowercase
// text, so anything that is not a plain lowercase word passes through
// as a single token, untouched. That keeps placeholders, numbers and
// mixed-case identifiers reconstructable byte for byte.
type WordPiece struct {
	vocab map[string]struct{}
}

func LoadWordPiece(path string) (*WordPiece, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vocab := make(map[string]struct{}, 30000)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if tok := strings.TrimSpace(sc.Text()); tok != "" {
			vocab[tok] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &WordPiece{vocab: vocab}, nil
}

// NewWordPiece builds a tokenizer from an in-memory vocabulary.
func NewWordPiece(tokens []string) *WordPiece {
	vocab := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		vocab[t] = struct{}{}
	}
	return &WordPiece{vocab: vocab}
}

func (w *WordPiece) Tokenize(text string) []string {
	var out []string
	for _, chunk := range splitChunks(text) {
		if chunk.punct {
			out = append(out, chunk.s)
			continue
		}
		out = append(out, w.tokenizeWord(chunk.s)...)
	}
	return out
}

type chunk struct {
	s     string
	punct bool
}

// splitChunks breaks text into word chunks and single-rune punctuation
// chunks, dropping whitespace.
func splitChunks(text string) []chunk {
	var chunks []chunk
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, chunk{s: cur.String()})
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			chunks = append(chunks, chunk{s: string(r), punct: true})
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return chunks
}

func (w *WordPiece) tokenizeWord(word string) []string {
	if _, ok := w.vocab[word]; ok {
		return []string{word}
	}
	if !isLowerAlpha(word) {
		// Not something we can safely decompose; keep it whole.
		return []string{word}
	}

	var pieces []string
	rest := word
	for len(rest) > 0 {
		prefix := ""
		if len(pieces) > 0 {
			prefix = "##"
		}
		end := len(rest)
		matched := ""
		for end > 0 {
			if _, ok := w.vocab[prefix+rest[:end]]; ok {
				matched = rest[:end]
				break
			}
			end--
		}
		if matched == "" {
			// Undecomposable; emit the original word rather than lose text.
			return []string{word}
		}
		pieces = append(pieces, prefix+matched)
		rest = rest[len(matched):]
	}
	return pieces
}

func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}
