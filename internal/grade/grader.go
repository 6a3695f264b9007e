package grade

import (
	"context"
	"fmt"
	"strings"

	"github.com/scriptmark/scriptmark/internal/nlp"
)

// Engine grades single answers, routing by question type to the
// appropriate strategy. The NLP provider is resolved lazily through the
// holder so invalid input never pays model-initialization cost.
type Engine struct {
	nlp     *nlp.Holder
	policy  Policy
	maxEdit int

	strategies map[string]strategy
}

type strategy interface {
	grade(ctx context.Context, e *Engine, req Request) (Result, error)
}

type Option func(*Engine)

func WithPolicy(p Policy) Option       { return func(e *Engine) { e.policy = p } }
func WithMaxEditDistance(n int) Option { return func(e *Engine) { e.maxEdit = n } }

func NewEngine(h *nlp.Holder, opts ...Option) *Engine {
	e := &Engine{
		nlp:     h,
		policy:  DefaultPolicy(),
		maxEdit: 1,
	}
	for _, o := range opts {
		o(e)
	}
	e.strategies = map[string]strategy{
		"multiple_choice": choiceStrategy{},
		"short_answer":    hybridStrategy{},
		"essay":           hybridStrategy{},
		"descriptive":     hybridStrategy{},
	}
	return e
}

func (e *Engine) Policy() Policy { return e.policy }

// GradeAnswer grades one answer. Empty answers and empty reference sets
// short-circuit with a zero score and an explanatory message before any
// provider call.
func (e *Engine) GradeAnswer(ctx context.Context, req Request) (Result, error) {
	req.Answer = strings.TrimSpace(req.Answer)
	if req.Answer == "" {
		return Result{Feedback: "No answer provided."}, nil
	}

	typ := req.QuestionType
	if typ == "" {
		typ = "descriptive"
	}
	s, ok := e.strategies[typ]
	if !ok {
		return Result{
			NeedsManual: true,
			Feedback:    fmt.Sprintf("No grading strategy for question type %q; manual review required.", typ),
		}, nil
	}
	return s.grade(ctx, e, req)
}

func cleanRefs(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}

// choiceStrategy matches the answer against the answer key: exact after
// folding, or within the configured edit distance for half credit.
type choiceStrategy struct{}

func (choiceStrategy) grade(_ context.Context, e *Engine, req Request) (Result, error) {
	keys := cleanRefs(req.AnswerKey)
	if len(keys) == 0 {
		keys = cleanRefs(req.References)
	}
	if len(keys) == 0 {
		return Result{Feedback: "No reference answer configured for this question."}, nil
	}

	folded := foldAnswer(req.Answer)
	fuzzy := false
	for _, k := range keys {
		fk := foldAnswer(k)
		if fk == folded {
			return Result{Score: req.MaxPoints, Similarity: 1.0, Feedback: "Correct answer."}, nil
		}
		if e.maxEdit > 0 && editDistance(fk, folded) <= e.maxEdit {
			fuzzy = true
		}
	}
	if fuzzy {
		return Result{
			Score:       round2(req.MaxPoints * 0.5),
			Feedback:    "Close match (fuzzy); partial credit awarded.",
			Adjustments: []string{"Close match (fuzzy)"},
		}, nil
	}
	return Result{Feedback: "Incorrect answer."}, nil
}

// hybridStrategy is the semantic + rule-based path for free-text
// answers.
type hybridStrategy struct{}

func (hybridStrategy) grade(ctx context.Context, e *Engine, req Request) (Result, error) {
	refs := cleanRefs(req.References)
	if len(refs) == 0 {
		return Result{Feedback: "No reference answer configured for this question."}, nil
	}

	p, err := e.nlp.Get()
	if err != nil {
		return Result{}, fmt.Errorf("nlp provider: %w", err)
	}

	vecs, err := p.Embed(ctx, append([]string{req.Answer}, refs...))
	if err != nil {
		return Result{}, fmt.Errorf("embed answer: %w", err)
	}
	best := 0.0
	for _, rv := range vecs[1:] {
		if sim := nlp.Cosine(vecs[0], rv); sim > best {
			best = sim
		}
	}

	minWords, maxWords := req.MinWords, req.MaxWords
	if minWords <= 0 {
		minWords = e.policy.MinWords
	}
	if maxWords <= 0 {
		maxWords = e.policy.MaxWords
	}
	ga := AnalyzeGrammarAndLength(req.Answer, minWords, maxWords)
	tc := CheckMandatoryTerms(req.Answer, req.MandatoryTerms)

	var pr PlagiarismResult
	if len(req.PeerAnswers) > 0 {
		pr, err = DetectPlagiarism(ctx, p, req.Answer, req.PeerAnswers, e.policy.PlagiarismThreshold)
		if err != nil {
			return Result{}, err
		}
	}
	pr.WebIndicators = WebIndicators(req.Answer)

	semantic := req.MaxPoints * e.policy.passRatio(best)
	score, adjustments := Blend(semantic, ga, tc.Coverage, pr, req.MaxPoints, e.policy)
	feedback := ComposeFeedback(best, ga, tc, pr, adjustments)

	return Result{
		Score:       score,
		Feedback:    feedback,
		Similarity:  best,
		Adjustments: adjustments,
		Grammar:     &ga,
	}, nil
}
