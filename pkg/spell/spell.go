// Copyright 2024 The Docweave Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

// Nearest returns the known word closest to the given one, when close enough
// to plausibly be a misspelling of it (edit distance at most 2, and strictly
// less than the word's own length).
func Nearest(given string, known []string) (string, bool) {
	bestDistance := -1
	bestWord := ""

	for _, word := range known {
		d := distance(given, word)
		if bestDistance == -1 || d < bestDistance {
			bestDistance = d
			bestWord = word
		}
	}

	if bestDistance < 0 || bestDistance > 2 || bestDistance >= len(given) {
		return "", false
	}
	return bestWord, true
}

// distance is the Levenshtein edit distance between a and b.
func distance(a, b string) int {
	ar, br := []rune(a), []rune(b)

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)

	for j := 0; j <= len(br); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(br)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
