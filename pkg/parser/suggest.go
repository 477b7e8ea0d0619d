package parser

import "strings"

// suggestKeyword checks whether input looks like a misspelled keyword
// from candidates and returns the closest match within edit distance 2,
// or "" if no close match exists. Candidates come from the active
// dialect's keyword sets rather than a hardcoded list.
func suggestKeyword(input string, candidates []string) string {
	input = strings.ToUpper(strings.TrimSpace(input))
	if len(input) < 4 {
		return ""
	}

	for _, kw := range candidates {
		if input == kw {
			return ""
		}
	}

	const maxDistance = 2
	bestMatch := ""
	bestDistance := maxDistance + 1

	for _, kw := range candidates {
		if len(kw) <= 2 {
			continue
		}
		lenDiff := len(kw) - len(input)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxDistance {
			continue
		}
		dist := levenshteinDistance(input, kw)
		if dist <= maxDistance && dist < bestDistance {
			bestDistance = dist
			bestMatch = kw
		}
	}
	return bestMatch
}

// levenshteinDistance is the minimum number of single-character edits
// (insertions, deletions, substitutions) needed to turn s1 into s2.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(s2)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
