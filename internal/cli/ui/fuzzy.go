package ui

import (
	"sort"
	"strings"
)

// maxSuggestDistance bounds how far a candidate may be from the target
// before it stops being a useful suggestion.
const maxSuggestDistance = 3

// Suggest returns up to max candidates within edit distance
// maxSuggestDistance of target, closest first. Matching is
// case-insensitive.
func Suggest(target string, candidates []string, max int) []string {
	type scored struct {
		value    string
		distance int
	}

	lowered := strings.ToLower(target)
	var close []scored
	for _, candidate := range candidates {
		d := editDistance(lowered, strings.ToLower(candidate))
		if d <= maxSuggestDistance {
			close = append(close, scored{candidate, d})
		}
	}

	sort.SliceStable(close, func(i, j int) bool {
		return close[i].distance < close[j].distance
	})

	if len(close) > max {
		close = close[:max]
	}
	result := make([]string, len(close))
	for i, s := range close {
		result[i] = s.value
	}
	return result
}

// editDistance is the Levenshtein distance between two strings, computed
// with a rolling single-row table.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur := prev[0]
		prev[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := prev[j] + 1 // deletion
			if ins := prev[j-1] + 1; ins < d {
				d = ins
			}
			if sub := cur + cost; sub < d {
				d = sub
			}
			cur, prev[j] = prev[j], d
		}
	}

	return prev[len(b)]
}
