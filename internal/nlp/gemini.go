package nlp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultEmbedModel = "text-embedding-004"

// Gemini backs the Provider interface with the Gemini embedding API plus
// an optional local WordPiece tokenizer (the API has no tokenize
// endpoint).
type Gemini struct {
	client *genai.Client
	model  string
	wp     *WordPiece
}

// NewGemini dials the Gemini API. vocabPath may be empty, in which case
// the provider reports no tokenizer capability and spacing repair
// degrades to a pass-through.
func NewGemini(ctx context.Context, apiKey, model, vocabPath string) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbedModel
	}
	g := &Gemini{client: cl, model: model}
	if vocabPath != "" {
		wp, err := LoadWordPiece(vocabPath)
		if err != nil {
			return nil, fmt.Errorf("tokenizer vocab %s: %w", vocabPath, err)
		}
		g.wp = wp
	}
	return g, nil
}

func (g *Gemini) Close() error { return g.client.Close() }

func (g *Gemini) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	em := g.client.EmbeddingModel(g.model)
	batch := em.NewBatch()
	for _, t := range texts {
		batch.AddContent(genai.Text(t))
	}
	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("embed batch: %w", err)
	}
	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed batch: got %d vectors for %d texts", len(res.Embeddings), len(texts))
	}
	out := make([][]float32, len(res.Embeddings))
	for i, e := range res.Embeddings {
		v := make([]float32, len(e.Values))
		copy(v, e.Values)
		normalize(v)
		out[i] = v
	}
	return out, nil
}

func (g *Gemini) Tokenize(text string) []string {
	if g.wp == nil {
		return nil
	}
	return g.wp.Tokenize(text)
}

func (g *Gemini) HasTokenizer() bool { return g.wp != nil }
