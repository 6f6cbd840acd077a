// Package fuzzy provides edit-distance matching for "did you mean" suggestions
// attached to usage errors by the argv package.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds near-matches for a mistyped flag or command name.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher returns a matcher that accepts candidates within maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single characters produce junk suggestions
	}
}

// Match is one candidate within the accepted edit distance.
type Match struct {
	Value    string
	Distance int
}

// Best returns the closest candidate, or "" when nothing is close enough.
func (m *Matcher) Best(input string, candidates []string) string {
	matches := m.Matches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// Matches returns all candidates within the accepted distance, closest first.
// Ties are broken by common prefix length, then lexicographically so that the
// result is stable across map iteration order.
func (m *Matcher) Matches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)
	var matches []Match
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue // exact matches are not suggestions
		}
		d := m.distance(input, lower)
		if d <= m.maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		pi := commonPrefix(input, strings.ToLower(matches[i].Value))
		pj := commonPrefix(input, strings.ToLower(matches[j].Value))
		if pi != pj {
			return pi > pj
		}
		return matches[i].Value < matches[j].Value
	})

	return matches
}

// distance computes the Levenshtein distance between a and b using two rows,
// bailing out early once the distance is known to exceed the cutoff.
func (m *Matcher) distance(a, b string) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, cur = cur, prev
	}

	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// FindBestFlag returns the closest registered flag name to input, or "".
func FindBestFlag(input string, flags []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, flags)
}

// FindBestCommand returns the closest registered command name to input, or "".
func FindBestCommand(input string, commands []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(input, commands)
}
