package dedup

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"job-radar/internal/domain/job"

	"github.com/google/uuid"
)

func testJob(title, company, location, description, url string) job.JobRecord {
	return job.JobRecord{
		ID:          uuid.New(),
		Title:       title,
		Company:     company,
		Location:    location,
		Description: description,
		URL:         url,
	}
}

func TestCompareURLExactShortCircuits(t *testing.T) {
	a := testJob("Senior Backend Engineer", "Acme", "NYC", "long description", "https://boards.example.com/jobs/123?ref=email")
	b := testJob("Completely Different Title", "Other Co", "LA", "other text", "https://boards.example.com/jobs/123/")

	got := Compare(a, b)
	if got.Method != job.DetectionURLExact {
		t.Fatalf("expected url-exact method, got %s", got.Method)
	}
	if got.Score.Overall != 100 || got.Score.Title != 100 || got.Score.Company != 100 ||
		got.Score.Location != 100 || got.Score.Description != 100 {
		t.Fatalf("url-exact must yield a synthetic perfect score, got %+v", got.Score)
	}
	if got.Score.Confidence != job.ConfidenceHigh {
		t.Fatalf("url-exact must be high confidence, got %s", got.Score.Confidence)
	}
}

func TestCompareIdenticalJobs(t *testing.T) {
	a := testJob("Backend Engineer", "Acme Corp", "Berlin", "Build services in Go", "")
	b := testJob("Backend Engineer", "Acme Corp", "Berlin", "Build services in Go", "")

	got := Compare(a, b)
	if got.Method != job.DetectionFuzzy {
		t.Fatalf("expected fuzzy method, got %s", got.Method)
	}
	if math.Abs(got.Score.Overall-100) > 1e-9 {
		t.Fatalf("identical jobs should score 100 overall, got %v", got.Score.Overall)
	}
	if got.Score.Confidence != job.ConfidenceHigh {
		t.Fatalf("expected high confidence, got %s", got.Score.Confidence)
	}
}

func TestCompareWeights(t *testing.T) {
	// Identical except location, which is empty on one side (location
	// similarity 0): overall = 100 - 15.
	a := testJob("Backend Engineer", "Acme Corp", "Berlin", "Build services", "")
	b := testJob("Backend Engineer", "Acme Corp", "", "Build services", "")

	got := Compare(a, b)
	if math.Abs(got.Score.Overall-85) > 1e-9 {
		t.Fatalf("expected overall 85, got %v", got.Score.Overall)
	}
}

func TestConfidenceTiers(t *testing.T) {
	cases := []struct {
		overall float64
		want    job.ConfidenceTier
	}{
		{90, job.ConfidenceHigh},
		{85, job.ConfidenceHigh},
		{84.9, job.ConfidenceMedium},
		{70, job.ConfidenceMedium},
		{69.9, job.ConfidenceLow},
		{0, job.ConfidenceLow},
	}
	for _, c := range cases {
		if got := confidenceFor(c.overall); got != c.want {
			t.Fatalf("confidenceFor(%v) = %s, want %s", c.overall, got, c.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://Example.com/Jobs/123/", "https://example.com/jobs/123"},
		{"https://example.com/jobs/123?utm_source=x#top", "https://example.com/jobs/123"},
		{"https://example.com/", "https://example.com"},
		{"", ""},
		{"not a url", ""},
	}
	for _, c := range cases {
		if got := NormalizeURL(c.in); got != c.want {
			t.Fatalf("NormalizeURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	s := strings.Repeat("é", descriptionPrefixLen+10)
	got := truncate(s, descriptionPrefixLen)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got[len(got)-4:])
	}
	if n := utf8.RuneCountInString(got); n != descriptionPrefixLen {
		t.Fatalf("rune count = %d, want %d", n, descriptionPrefixLen)
	}
	if short := truncate("café", descriptionPrefixLen); short != "café" {
		t.Fatalf("short strings pass through, got %q", short)
	}
}

func TestCompareEmptyURLsNeverExactMatch(t *testing.T) {
	a := testJob("A", "X", "", "", "")
	b := testJob("B", "Y", "", "", "")
	if got := Compare(a, b); got.Method == job.DetectionURLExact {
		t.Fatalf("two empty URLs must not count as an exact match")
	}
}
