package dispatch

import (
	"sort"
	"strings"

	"github.com/grafter-tools/grafter/internal/native"
)

// levenshtein calculates the edit distance between two strings.
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type candidate struct {
	name     string
	distance int
}

// similar finds literal children of node with names close to the input,
// skipping nodes the source may not see.
func similar(input string, node native.Node, src native.Source, maxResults int) []string {
	const maxDistance = 3

	var candidates []candidate
	for _, child := range node.Children() {
		if !child.Literal() || !allowed(child, src) {
			continue
		}
		dist := levenshtein(input, child.Name())
		if dist <= maxDistance && dist > 0 {
			candidates = append(candidates, candidate{name: child.Name(), distance: dist})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.name
	}
	return result
}
