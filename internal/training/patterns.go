package training

import "math"

// PatternReport summarizes teacher-versus-automatic score drift.
type PatternReport struct {
	Message                string  `json:"message,omitempty"`
	TotalExamples          int     `json:"total_examples,omitempty"`
	AverageScoreDifference float64 `json:"average_score_difference"`
	TeacherScoredHigher    int     `json:"teacher_scored_higher"`
	TeacherScoredLower     int     `json:"teacher_scored_lower"`
	SimilarScores          int     `json:"similar_scores"`
	Recommendation         string  `json:"recommendation,omitempty"`
}

// Differences inside this band count as agreement.
const agreementBand = 0.1

// AnalyzePatterns aggregates score differences. Positive difference
// means the teacher scored higher than the engine.
func AnalyzePatterns(data []Example) PatternReport {
	if len(data) == 0 {
		return PatternReport{Message: "No training data collected yet."}
	}

	var sum float64
	var higher, lower int
	for _, ex := range data {
		d := ex.ScoreDifference
		sum += d
		switch {
		case d > agreementBand:
			higher++
		case d < -agreementBand:
			lower++
		}
	}
	avg := sum / float64(len(data))

	rec := "Current thresholds seem appropriate"
	if math.Abs(avg) > 0.5 {
		rec = "Consider adjusting thresholds"
	}
	return PatternReport{
		TotalExamples:          len(data),
		AverageScoreDifference: math.Round(avg*100) / 100,
		TeacherScoredHigher:    higher,
		TeacherScoredLower:     lower,
		SimilarScores:          len(data) - higher - lower,
		Recommendation:         rec,
	}
}

// Patterns loads the stored examples and analyzes them.
func (s *FileStore) Patterns() (PatternReport, error) {
	data, err := s.All()
	if err != nil {
		return PatternReport{}, err
	}
	return AnalyzePatterns(data), nil
}
