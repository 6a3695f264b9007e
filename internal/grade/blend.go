package grade

import (
	"fmt"
	"math"
)

// Blend combines the three signals into one bounded score.
// semanticScore arrives pre-scaled to points (maxPoints * pass ratio);
// the blend applies the semantic weight to it directly. Adjustments are
// recorded in arrival order: terms, grammar, plagiarism.
func Blend(semanticScore float64, grammar GrammarAnalysis, termCoverage float64, plag PlagiarismResult, maxPoints float64, p Policy) (float64, []string) {
	var adjustments []string

	base := semanticScore * p.SemanticWeight

	termScore := termCoverage * p.TermWeight * maxPoints
	if termCoverage < p.LowCoverage {
		lost := round2((1 - termCoverage) * p.TermWeight * maxPoints)
		adjustments = append(adjustments, fmt.Sprintf("Missing key concepts (-%.2f pts)", lost))
	}

	grammarScore := p.GrammarWeight * maxPoints
	if !grammar.Passed {
		grammarScore *= 0.5
		adjustments = append(adjustments, "Length requirements not met (-50% grammar score)")
	}
	if len(grammar.Warnings) > 0 {
		grammarScore *= 0.8
		adjustments = append(adjustments, "Minor grammar/style issues detected")
	}

	var penalty float64
	if plag.Flagged {
		penalty = maxPoints * p.PlagiarismPenalty
		adjustments = append(adjustments, fmt.Sprintf("Potential plagiarism detected (-%.2f pts)", penalty))
	}

	final := round2(base + termScore + grammarScore - penalty)
	final = math.Max(0, math.Min(maxPoints, final))
	return final, adjustments
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
