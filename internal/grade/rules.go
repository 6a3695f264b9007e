package grade

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/scriptmark/scriptmark/internal/textproc"
)

var (
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
	nonWordRune = regexp.MustCompile(`[^\w]`)
)

// AnalyzeGrammarAndLength runs the best-effort length/grammar
// heuristics. It is deliberately not a grammar engine: word counts come
// from a whitespace split and sentences from terminal-punctuation runs.
func AnalyzeGrammarAndLength(text string, minWords, maxWords int) GrammarAnalysis {
	var issues, warnings []string

	words := strings.Fields(text)
	wordCount := len(words)
	sentenceCount := len(sentenceEnd.FindAllString(text, -1))
	if sentenceCount == 0 {
		sentenceCount = 1
	}
	avgLen := math.Round(float64(wordCount)/float64(sentenceCount)*10) / 10

	if wordCount < minWords {
		issues = append(issues, fmt.Sprintf("Answer too short (%d words, minimum %d expected)", wordCount, minWords))
	} else if wordCount > maxWords {
		warnings = append(warnings, fmt.Sprintf("Answer quite long (%d words)", wordCount))
	}

	sentences := sentenceEnd.Split(text, -1)
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if r := []rune(s)[0]; unicode.IsLower(r) {
			warnings = append(warnings, "Some sentences don't start with capital letters")
			break
		}
	}

	// Excessive repetition of a content word suggests filler or a
	// copy-paste loop. Short words are ignored.
	freq := make(map[string]int, wordCount)
	var order []string
	for _, w := range words {
		clean := nonWordRune.ReplaceAllString(strings.ToLower(w), "")
		if len(clean) <= 3 {
			continue
		}
		if freq[clean] == 0 {
			order = append(order, clean)
		}
		freq[clean]++
	}
	for _, w := range order {
		if c := freq[w]; c > 5 && float64(c)/float64(wordCount) > 0.1 {
			warnings = append(warnings, fmt.Sprintf("Word %q repeated excessively (%d times)", w, c))
		}
	}

	short := 0
	for _, s := range sentences {
		if strings.TrimSpace(s) != "" && len(strings.Fields(s)) < 3 {
			short++
		}
	}
	if short > 2 {
		warnings = append(warnings, "Multiple very short/incomplete sentences detected")
	}

	return GrammarAnalysis{
		WordCount:         wordCount,
		SentenceCount:     sentenceCount,
		AvgSentenceLength: avgLen,
		Issues:            issues,
		Warnings:          warnings,
		Passed:            len(issues) == 0,
	}
}

// CheckMandatoryTerms reports which rubric terms appear in the answer,
// matched case-insensitively against the normalized text. No configured
// terms means coverage 1.0: absence of a requirement is satisfied.
func CheckMandatoryTerms(text string, terms []string) TermCheck {
	if len(terms) == 0 {
		return TermCheck{Coverage: 1.0}
	}
	lower := textproc.Preprocess(text)
	var found, missing []string
	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(strings.TrimSpace(term))) {
			found = append(found, term)
		} else {
			missing = append(missing, term)
		}
	}
	return TermCheck{
		Found:    found,
		Missing:  missing,
		Coverage: float64(len(found)) / float64(len(terms)),
	}
}
