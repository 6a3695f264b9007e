package grade

import "unicode"

// foldAnswer lowercases, drops punctuation and collapses spacing so
// answer-key comparison ignores formatting noise.
func foldAnswer(s string) string {
	out := make([]rune, 0, len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
		case unicode.IsPunct(r):
			// ignore
		default:
			if pendingSpace && len(out) > 0 {
				out = append(out, ' ')
			}
			pendingSpace = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}

// editDistance is plain Levenshtein (unit costs), used for the fuzzy
// answer-key match on choice questions.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			sub := diag
			if ra[i-1] != rb[j-1] {
				sub++
			}
			diag = row[j]
			if del := row[j-1] + 1; del < sub {
				sub = del
			}
			if ins := row[j] + 1; ins < sub {
				sub = ins
			}
			row[j] = sub
		}
	}
	return row[len(rb)]
}
