package grade

import (
	"context"
	"fmt"
	"regexp"

	"github.com/scriptmark/scriptmark/internal/nlp"
)

// DetectPlagiarism embeds the answer alongside its peers and flags the
// answer when any peer similarity reaches the threshold. Every peer at
// or above the threshold is reported, not only the best match. The
// threshold defaults high: paraphrase-tolerant embeddings score
// moderately similar even for independent answers on one topic.
func DetectPlagiarism(ctx context.Context, p nlp.Provider, answer string, peers []string, threshold float64) (PlagiarismResult, error) {
	if answer == "" || len(peers) == 0 {
		return PlagiarismResult{Threshold: threshold}, nil
	}

	vecs, err := p.Embed(ctx, append([]string{answer}, peers...))
	if err != nil {
		return PlagiarismResult{}, fmt.Errorf("plagiarism embed: %w", err)
	}

	res := PlagiarismResult{Threshold: threshold}
	var maxSim float64
	for i, pv := range vecs[1:] {
		sim := nlp.Cosine(vecs[0], pv)
		if sim > maxSim {
			maxSim = sim
		}
		if sim >= threshold {
			res.Matches = append(res.Matches, PeerMatch{Index: i, Similarity: round3(sim)})
		}
	}
	// Flag on the raw maximum; rounding is for reporting only.
	res.Flagged = maxSim >= threshold
	res.MaxSimilarity = round3(maxSim)
	return res, nil
}

var webIndicatorChecks = []struct {
	re   *regexp.Regexp
	note string
}{
	{regexp.MustCompile(`(?i)https?://|www\.|\.com|\.org|\.edu`), "Contains URL fragments"},
	{regexp.MustCompile(`(?i)\[\d+\]|\(\d{4}\)|\bet al\b`), "Contains citation-like markers"},
	{regexp.MustCompile(`(?i)\[edit\]|\[citation needed\]`), "Contains Wikipedia-style markers"},
	{regexp.MustCompile(`(?m)^\s*[-•]\s`), "Contains bullet points (possible copy-paste)"},
}

// WebIndicators runs the lexical copied-from-web heuristics. The
// returned notes are advisory feedback only and never change a score.
func WebIndicators(text string) []string {
	var out []string
	for _, c := range webIndicatorChecks {
		if c.re.MatchString(text) {
			out = append(out, c.note)
		}
	}
	return out
}
