package grade

// Policy gathers the tunable scoring constants. The defaults are
// calibrated for paraphrase-tolerant sentence embeddings, which report
// moderate similarity even for independently written answers on the
// same topic; none of these values is load-bearing beyond that.
type Policy struct {
	// Blend weights; must sum to 1.0 so MaxPoints is the true ceiling
	// before penalties.
	SemanticWeight float64
	TermWeight     float64
	GrammarWeight  float64

	// Raw cosine below the floor earns no semantic credit; at or above
	// the ceiling earns full credit; linear in between.
	SimilarityFloor   float64
	SimilarityCeiling float64

	// Coverage below this emits an explicit deduction note.
	LowCoverage float64

	// Peer similarity at or above this flags plagiarism.
	PlagiarismThreshold float64
	// Flat penalty as a fraction of MaxPoints when flagged.
	PlagiarismPenalty float64

	// Word-count bounds for the length check; overridable per question.
	MinWords int
	MaxWords int
}

func DefaultPolicy() Policy {
	return Policy{
		SemanticWeight:      0.70,
		TermWeight:          0.20,
		GrammarWeight:       0.10,
		SimilarityFloor:     0.4,
		SimilarityCeiling:   0.9,
		LowCoverage:         0.5,
		PlagiarismThreshold: 0.92,
		PlagiarismPenalty:   0.5,
		MinWords:            10,
		MaxWords:            1000,
	}
}

// passRatio rescales raw cosine similarity to a 0-1 credit ratio using
// the policy floor and ceiling.
func (p Policy) passRatio(sim float64) float64 {
	switch {
	case sim <= p.SimilarityFloor:
		return 0.0
	case sim >= p.SimilarityCeiling:
		return 1.0
	default:
		return (sim - p.SimilarityFloor) / (p.SimilarityCeiling - p.SimilarityFloor)
	}
}
