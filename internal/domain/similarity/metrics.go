package similarity

import (
	"math"
	"strings"
)

// EditDistance returns normalized edit-distance similarity in [0,100]
// over lowercased inputs. Both empty is 100, exactly one empty is 0.
func EditDistance(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	dist := levenshtein(ra, rb)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	return 100 * float64(maxLen-dist) / float64(maxLen)
}

// levenshtein computes classic edit distance with unit costs using a
// rolling two-row DP table.
func levenshtein(a, b []rune) int {
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
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// TokenSet returns the Jaccard index over word-token sets in [0,100].
// Two empty token sets are 100, exactly one empty is 0.
func TokenSet(a, b string) float64 {
	sa := Tokenize(a)
	sb := Tokenize(b)

	if len(sa) == 0 && len(sb) == 0 {
		return 100
	}
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	intersection := 0
	union := len(sa)
	for t := range sb {
		if _, ok := sa[t]; ok {
			intersection++
		} else {
			union++
		}
	}
	return 100 * float64(intersection) / float64(union)
}

// BigramCosine returns cosine similarity over character-bigram
// frequency vectors in [0,100]. Zero-magnitude cases return 0.
func BigramCosine(a, b string) float64 {
	va := bigramFrequencies(a)
	vb := bigramFrequencies(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for k, fa := range va {
		magA += float64(fa * fa)
		if fb, ok := vb[k]; ok {
			dot += float64(fa * fb)
		}
	}
	for _, fb := range vb {
		magB += float64(fb * fb)
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return 100 * dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func bigramFrequencies(s string) map[string]int {
	runes := []rune(strings.ToLower(s))
	freqs := make(map[string]int)
	for i := 0; i+1 < len(runes); i++ {
		freqs[string(runes[i:i+2])]++
	}
	return freqs
}

// Hybrid is the maximum of the three metrics, not a blend: strings that
// look similar under any single lexical model are treated as matching,
// trading precision for recall in duplicate detection.
func Hybrid(a, b string) float64 {
	best := EditDistance(a, b)
	if j := TokenSet(a, b); j > best {
		best = j
	}
	if c := BigramCosine(a, b); c > best {
		best = c
	}
	return best
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
