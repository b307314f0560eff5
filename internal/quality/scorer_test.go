package quality

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"job-radar/internal/domain/job"

	"github.com/google/uuid"
)

type fakeJobLookup struct {
	rec job.JobRecord
	err error
}

func (f *fakeJobLookup) GetJobByID(ctx context.Context, jobID uuid.UUID) (job.JobRecord, error) {
	return f.rec, f.err
}

func fixedScorer(lookup JobLookup, at time.Time) *Scorer {
	s := NewScorer(lookup)
	s.now = func() time.Time { return at }
	return s
}

func TestCompleteness(t *testing.T) {
	full := job.JobRecord{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		Description: strings.Repeat("build and run distributed services ", 4),
		URL:         "https://acme.example.com/jobs/1",
	}
	if got := Completeness(full); got != 100 {
		t.Fatalf("fully described job = %v, want 100", got)
	}

	thin := job.JobRecord{Title: "Backend Engineer", Description: "short"}
	if got := Completeness(thin); got != 20 {
		t.Fatalf("title-only job = %v, want 20 (short descriptions do not count)", got)
	}

	if got := Completeness(job.JobRecord{Title: "   "}); got != 0 {
		t.Fatalf("whitespace fields must not count, got %v", got)
	}
}

func TestSourceReliability(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"LinkedIn", 85},
		{"company_site", 95},
		{"google", 70},
		{"", 40},
		{"some-new-board", 40},
	}
	for _, tt := range tests {
		if got := SourceReliability(tt.source); got != tt.want {
			t.Errorf("SourceReliability(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestFreshnessBuckets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(&fakeJobLookup{}, now)

	tests := []struct {
		age  time.Duration
		want float64
	}{
		{6 * time.Hour, 100},
		{2 * 24 * time.Hour, 80},
		{5 * 24 * time.Hour, 60},
		{10 * 24 * time.Hour, 40},
		{20 * 24 * time.Hour, 20},
		{45 * 24 * time.Hour, 0},
	}
	for _, tt := range tests {
		posted := now.Add(-tt.age)
		got := s.freshness(job.JobRecord{PostedAt: &posted})
		if got != tt.want {
			t.Errorf("freshness(age=%v) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestFreshnessFallsBackToCreatedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := fixedScorer(&fakeJobLookup{}, now)

	if got := s.freshness(job.JobRecord{CreatedAt: now.Add(-2 * time.Hour)}); got != 100 {
		t.Fatalf("created_at fallback = %v, want 100", got)
	}
	if got := s.freshness(job.JobRecord{}); got != 0 {
		t.Fatalf("no timestamps = %v, want 0", got)
	}
}

func TestGetQualityScoreOverall(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	posted := now.Add(-2 * time.Hour)
	lookup := &fakeJobLookup{rec: job.JobRecord{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Berlin",
		Description: strings.Repeat("run distributed services at scale ", 4),
		URL:         "https://acme.example.com/jobs/1",
		Source:      "company_site",
		PostedAt:    &posted,
	}}
	s := fixedScorer(lookup, now)

	q, err := s.GetQualityScore(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 100*0.5 + 95*0.25 + 100*0.25
	if q.Overall != 98.75 {
		t.Fatalf("overall = %v, want 98.75", q.Overall)
	}
}

func TestGetQualityScorePropagatesLookupError(t *testing.T) {
	want := errors.New("boom")
	s := NewScorer(&fakeJobLookup{err: want})

	if _, err := s.GetQualityScore(context.Background(), uuid.New()); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
