package ui

import (
	"sort"
	"strings"
)

const (
	// maxDistance is the largest edit distance still offered as a suggestion
	maxDistance = 3
	// maxSuggestions caps how many suggestions are returned
	maxSuggestions = 3
)

// Suggest returns up to three candidates within a small edit distance of
// target, closest first. Matching is case-insensitive. Used to point at
// likely dialect names after a typo.
func Suggest(target string, candidates []string) []string {
	type scored struct {
		value    string
		distance int
	}

	lowered := strings.ToLower(target)
	var matches []scored
	for _, candidate := range candidates {
		d := levenshtein(lowered, strings.ToLower(candidate))
		if d <= maxDistance {
			matches = append(matches, scored{value: candidate, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	var result []string
	for _, m := range matches {
		if len(result) == maxSuggestions {
			break
		}
		result = append(result, m.value)
	}
	return result
}

// levenshtein computes the edit distance between two strings with a
// two-row dynamic program.
func levenshtein(a, b string) int {
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
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, minInt(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// minInt returns the smaller of two integers
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
