package grade

import (
	"fmt"
	"strings"
)

const (
	maxMissingTermsShown = 5
	maxWarningsShown     = 3
)

// ComposeFeedback renders the signals and adjustments into the tiered
// explanation returned to the student. The raw similarity goes at the
// end so a reviewer can audit the headline tier.
func ComposeFeedback(similarity float64, grammar GrammarAnalysis, terms TermCheck, plag PlagiarismResult, adjustments []string) string {
	var parts []string

	switch {
	case similarity >= 0.85:
		parts = append(parts, "Excellent answer! Your response demonstrates strong understanding of the concepts.")
	case similarity >= 0.70:
		parts = append(parts, "Good answer. You covered most key ideas well.")
	case similarity >= 0.50:
		parts = append(parts, "Partial answer. Some important concepts need more development.")
	default:
		parts = append(parts, "Needs improvement. Please review the topic and expand your answer.")
	}

	if len(terms.Missing) > 0 {
		shown := terms.Missing
		if len(shown) > maxMissingTermsShown {
			shown = shown[:maxMissingTermsShown]
		}
		parts = append(parts, "\nMissing concepts: "+strings.Join(shown, ", "))
	}

	for _, issue := range grammar.Issues {
		parts = append(parts, "\n"+issue)
	}

	if len(grammar.Warnings) > 0 {
		parts = append(parts, "\nSuggestions for improvement:")
		shown := grammar.Warnings
		if len(shown) > maxWarningsShown {
			shown = shown[:maxWarningsShown]
		}
		for _, w := range shown {
			parts = append(parts, "  - "+w)
		}
	}

	if plag.Flagged {
		parts = append(parts, "\nWarning: your answer shows high similarity to another submission. Please ensure your work is original.")
	}

	if len(adjustments) > 0 {
		parts = append(parts, "\nScore adjustments:")
		for _, a := range adjustments {
			parts = append(parts, "  - "+a)
		}
	}

	parts = append(parts, fmt.Sprintf("\n(Semantic similarity: %.2f)", similarity))

	return strings.Join(parts, "\n")
}
