package similarity

import (
	"math"
	"testing"
)

func TestEditDistance(t *testing.T) {
	if got := EditDistance("", ""); got != 100 {
		t.Fatalf("both empty should be 100, got %v", got)
	}
	if got := EditDistance("x", ""); got != 0 {
		t.Fatalf("one empty should be 0, got %v", got)
	}
	if got := EditDistance("Engineer", "engineer"); got != 100 {
		t.Fatalf("case-insensitive equal should be 100, got %v", got)
	}

	// "kitten" -> "sitting": distance 3, maxLen 7.
	want := 100 * float64(7-3) / 7
	if got := EditDistance("kitten", "sitting"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("EditDistance(kitten, sitting) = %v, want %v", got, want)
	}
}

func TestTokenSet(t *testing.T) {
	if got := TokenSet("", ""); got != 100 {
		t.Fatalf("both empty should be 100, got %v", got)
	}
	if got := TokenSet("go developer", ""); got != 0 {
		t.Fatalf("one empty should be 0, got %v", got)
	}
	if got := TokenSet("backend engineer", "engineer backend"); got != 100 {
		t.Fatalf("word order must not matter, got %v", got)
	}

	// {senior, go, developer} vs {go, developer}: 2/3.
	want := 100 * 2.0 / 3.0
	if got := TokenSet("senior go developer", "go developer"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("TokenSet = %v, want %v", got, want)
	}
}

func TestBigramCosine(t *testing.T) {
	if got := BigramCosine("ab", "ab"); math.Abs(got-100) > 1e-9 {
		t.Fatalf("identical strings should be 100, got %v", got)
	}
	if got := BigramCosine("ab", "cd"); got != 0 {
		t.Fatalf("disjoint bigrams should be 0, got %v", got)
	}
	if got := BigramCosine("", "ab"); got != 0 {
		t.Fatalf("empty input should be 0, got %v", got)
	}
	if got := BigramCosine("a", "a"); got != 0 {
		t.Fatalf("single rune has no bigrams, expected 0, got %v", got)
	}
}

func TestHybridSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Senior Backend Engineer", "Backend Engineer (Senior)"},
		{"Acme Corp", "ACME Corporation"},
		{"", "something"},
		{"a", "b"},
	}
	for _, p := range pairs {
		if ab, ba := Hybrid(p[0], p[1]), Hybrid(p[1], p[0]); math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("Hybrid(%q,%q)=%v but reversed=%v", p[0], p[1], ab, ba)
		}
	}
}

func TestHybridIdentity(t *testing.T) {
	if got := Hybrid("Platform Engineer", "Platform Engineer"); got != 100 {
		t.Fatalf("identical non-empty should be 100, got %v", got)
	}
	if got := Hybrid("", ""); got != 100 {
		t.Fatalf("both empty should be 100, got %v", got)
	}
	if got := Hybrid("x", ""); got != 0 {
		t.Fatalf("one empty should be 0, got %v", got)
	}
}

// Hybrid must be the maximum of the metrics, not a weighted blend.
// Reordered words give Jaccard 100 while the other metrics score
// lower; any averaging would land below 100.
func TestHybridIsMaxNotBlend(t *testing.T) {
	a, b := "engineer backend senior", "senior backend engineer"

	if ts := TokenSet(a, b); ts != 100 {
		t.Fatalf("precondition: token-set should be 100, got %v", ts)
	}
	if ed := EditDistance(a, b); ed >= 100 {
		t.Fatalf("precondition: edit distance should be below 100, got %v", ed)
	}

	if got := Hybrid(a, b); got != 100 {
		t.Fatalf("Hybrid should pick the max (100), got %v", got)
	}
}

func TestHybridRange(t *testing.T) {
	pairs := [][2]string{
		{"abc", "xyz"},
		{"software engineer", "snake charmer"},
		{"a", "aa"},
	}
	for _, p := range pairs {
		got := Hybrid(p[0], p[1])
		if got < 0 || got > 100 {
			t.Fatalf("Hybrid(%q,%q)=%v out of [0,100]", p[0], p[1], got)
		}
	}
}
