package grade

import (
	"strings"
	"testing"
)

func passedGrammar() GrammarAnalysis {
	return GrammarAnalysis{WordCount: 50, SentenceCount: 4, Passed: true}
}

func TestBlendBounded(t *testing.T) {
	p := DefaultPolicy()
	cases := []struct {
		name      string
		semantic  float64
		grammar   GrammarAnalysis
		coverage  float64
		plag      PlagiarismResult
		maxPoints float64
	}{
		{"all perfect", 10, passedGrammar(), 1.0, PlagiarismResult{}, 10},
		{"all zero", 0, GrammarAnalysis{Issues: []string{"too short"}}, 0, PlagiarismResult{}, 10},
		{"plagiarized", 10, passedGrammar(), 1.0, PlagiarismResult{Flagged: true}, 10},
		{"tiny max", 0.5, passedGrammar(), 0.5, PlagiarismResult{}, 0.5},
		{"large max", 100, passedGrammar(), 1.0, PlagiarismResult{Flagged: true}, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			score, _ := Blend(c.semantic, c.grammar, c.coverage, c.plag, c.maxPoints, p)
			if score < 0 || score > c.maxPoints {
				t.Errorf("score %v outside [0, %v]", score, c.maxPoints)
			}
		})
	}
}

func TestBlendMonotonicInCoverage(t *testing.T) {
	p := DefaultPolicy()
	prev := -1.0
	for cov := 0.0; cov <= 1.0; cov += 0.05 {
		score, _ := Blend(7.0, passedGrammar(), cov, PlagiarismResult{}, 10, p)
		if score < prev {
			t.Fatalf("score decreased at coverage %v: %v < %v", cov, score, prev)
		}
		prev = score
	}
}

func TestBlendFullCredit(t *testing.T) {
	p := DefaultPolicy()
	// Pre-weighted semantic at ceiling, full coverage, clean grammar.
	score, adj := Blend(10, passedGrammar(), 1.0, PlagiarismResult{}, 10, p)
	if score != 10 {
		t.Errorf("score = %v, want 10", score)
	}
	if len(adj) != 0 {
		t.Errorf("unexpected adjustments: %v", adj)
	}
}

func TestBlendLowCoverageNote(t *testing.T) {
	p := DefaultPolicy()
	_, adj := Blend(7, passedGrammar(), 0.25, PlagiarismResult{}, 10, p)
	if len(adj) == 0 || !strings.Contains(adj[0], "Missing key concepts") {
		t.Errorf("want a low-coverage deduction note, got %v", adj)
	}
	// The note names the point cost: (1-0.25) * 0.2 * 10 = 1.50.
	if !strings.Contains(adj[0], "1.50") {
		t.Errorf("note should name the point cost: %v", adj)
	}
}

func TestBlendGrammarPenaltiesStack(t *testing.T) {
	p := DefaultPolicy()
	g := GrammarAnalysis{
		Issues:   []string{"Answer too short (5 words, minimum 10 expected)"},
		Warnings: []string{"Some sentences don't start with capital letters"},
	}
	// grammar contribution: 0.1*10 * 0.5 * 0.8 = 0.4
	score, adj := Blend(0, g, 0, PlagiarismResult{}, 10, p)
	// term note + issue note + warning note
	if len(adj) != 3 {
		t.Errorf("adjustments = %v", adj)
	}
	if score != 0.4 {
		t.Errorf("score = %v, want 0.4", score)
	}
}

func TestBlendPlagiarismPenalty(t *testing.T) {
	p := DefaultPolicy()
	flagged := PlagiarismResult{Flagged: true, MaxSimilarity: 0.97}
	clean, _ := Blend(9, passedGrammar(), 1.0, PlagiarismResult{}, 10, p)
	dinged, adj := Blend(9, passedGrammar(), 1.0, flagged, 10, p)
	if dinged != clean-5.0 {
		t.Errorf("flat penalty should cost half of max: clean %v, flagged %v", clean, dinged)
	}
	found := false
	for _, a := range adj {
		if strings.Contains(a, "plagiarism") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing plagiarism adjustment: %v", adj)
	}
}

func TestBlendAdjustmentOrder(t *testing.T) {
	p := DefaultPolicy()
	g := GrammarAnalysis{Issues: []string{"short"}}
	_, adj := Blend(5, g, 0.1, PlagiarismResult{Flagged: true}, 10, p)
	if len(adj) != 3 {
		t.Fatalf("adjustments = %v", adj)
	}
	if !strings.Contains(adj[0], "concepts") || !strings.Contains(adj[1], "Length") || !strings.Contains(adj[2], "plagiarism") {
		t.Errorf("order should be terms, grammar, plagiarism: %v", adj)
	}
}
