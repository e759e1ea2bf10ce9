package domain

import (
	"slices"
	"strings"
)

// FuzzyScore calculates a relevance score for how well target matches query.
// Zero means no match.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars must appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && isSeparator(target[i-1]) {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '.', '-', '_', '/', '\\':
		return true
	}
	return false
}

// FilterRanked keeps the programs whose title matches query, best match first.
// Programs with the same match score keep their frecency order.
// An empty query returns ranked unchanged.
func FilterRanked(ranked []RankedProgram, query string) []RankedProgram {
	query = strings.TrimSpace(query)
	if query == "" {
		return ranked
	}

	type scored struct {
		rp    RankedProgram
		score int
	}
	matches := make([]scored, 0, len(ranked))
	for _, rp := range ranked {
		if s := FuzzyScore(rp.Title, query); s > 0 {
			matches = append(matches, scored{rp: rp, score: s})
		}
	}

	slices.SortStableFunc(matches, func(a, b scored) int {
		return b.score - a.score
	})

	out := make([]RankedProgram, len(matches))
	for i, m := range matches {
		out[i] = m.rp
	}
	return out
}
