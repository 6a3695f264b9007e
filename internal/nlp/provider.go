package nlp

import (
	"context"
	"sync"
)

// Provider supplies the two model capabilities the grader consumes as
// black boxes: text embedding and sub-word tokenization. Tokenization is
// optional; callers must probe HasTokenizer before relying on it.
type Provider interface {
	// Embed returns one unit-normalized fixed-length vector per input
	// text, order-preserving.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Tokenize splits text into sub-word tokens ("##" continuation
	// convention). Returns nil when no tokenizer is available.
	Tokenize(text string) []string
	HasTokenizer() bool
}

// Holder lazily constructs a Provider once per process and caches it.
// First caller pays the initialization cost; the cached instance is
// read-only afterwards.
type Holder struct {
	build func() (Provider, error)

	once sync.Once
	p    Provider
	err  error
}

func NewHolder(build func() (Provider, error)) *Holder {
	return &Holder{build: build}
}

func (h *Holder) Get() (Provider, error) {
	h.once.Do(func() {
		h.p, h.err = h.build()
	})
	return h.p, h.err
}
