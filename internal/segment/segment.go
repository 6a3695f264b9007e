// Package segment recovers per-question answer spans from a single block
// of extracted answer-sheet text. A cascade of marker strategies runs
// first; a line-oriented scan is the fallback when no marker pattern
// matches at all.
package segment

import (
	"regexp"
	"strconv"
	"strings"
)

// Strategy proposes a partial question-number -> answer-text mapping.
// Strategies never invent answers: an index absent from the text stays
// absent from the result.
type Strategy interface {
	TrySegment(text string, questionCount int) map[int]string
}

var strategies = []Strategy{
	markerStrategy{re: regexp.MustCompile(`(?i)(?:q|question)\s*(\d+)[:.)\s]+`)},
	markerStrategy{re: regexp.MustCompile(`(?m)^\s*(\d+)[:.)]\s+`)},
	markerStrategy{re: regexp.MustCompile(`(?m)^\s*\((\d+)\)\s+`)},
}

// Answers segments text into answers for questions 1..questionCount.
// All marker strategies run and their results merge under the
// longer-text-wins rule; the line fallback runs only when the whole
// cascade comes up empty. Unmarked text yields an empty map and the
// caller treats every question as unanswered.
func Answers(text string, questionCount int) map[int]string {
	out := make(map[int]string)
	for _, s := range strategies {
		merge(out, s.TrySegment(text, questionCount))
	}
	if len(out) == 0 {
		merge(out, lineFallback{}.TrySegment(text, questionCount))
	}
	return out
}

// merge folds src into dst keeping the longer answer text per index.
// Ties keep what is already recorded.
func merge(dst, src map[int]string) {
	for n, txt := range src {
		if cur, ok := dst[n]; !ok || len(txt) > len(cur) {
			dst[n] = txt
		}
	}
}

// markerStrategy captures a question number at each regex match and
// takes the answer to be the text between that marker and the next
// match of the same pattern (or end of input).
type markerStrategy struct {
	re *regexp.Regexp
}

func (s markerStrategy) TrySegment(text string, questionCount int) map[int]string {
	locs := s.re.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return nil
	}
	out := make(map[int]string, len(locs))
	for i, loc := range locs {
		n, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil || n < 1 || n > questionCount {
			continue
		}
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		ans := strings.TrimSpace(text[loc[1]:end])
		if ans == "" {
			continue
		}
		if cur, ok := out[n]; !ok || len(ans) > len(cur) {
			out[n] = ans
		}
	}
	return out
}

var lineMarker = regexp.MustCompile(`^(\d+)[:.)]\s*`)

// lineFallback handles sheets with irregular punctuation the marker
// patterns miss: a line starting with "<n>." (or ":" or ")") opens a
// buffer for question n, following lines append to it, and the open
// buffer flushes on the next marker or end of input.
type lineFallback struct{}

func (lineFallback) TrySegment(text string, questionCount int) map[int]string {
	out := make(map[int]string)
	cur := 0
	var buf []string

	flush := func() {
		if cur == 0 || len(buf) == 0 {
			return
		}
		if ans := strings.TrimSpace(strings.Join(buf, " ")); ans != "" {
			if cur >= 1 && cur <= questionCount {
				out[cur] = ans
			}
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := lineMarker.FindStringSubmatch(line); m != nil {
			flush()
			cur, _ = strconv.Atoi(m[1])
			buf = []string{strings.TrimSpace(line[len(m[0]):])}
			continue
		}
		if cur != 0 {
			buf = append(buf, line)
		}
	}
	flush()
	return out
}
