package quality

import (
	"context"
	"strings"
	"time"

	"job-radar/internal/domain/job"

	"github.com/google/uuid"
)

// Provider supplies the composite quality score the canonical selector
// uses to break ties. Lookups may fail; the selector treats a failed
// lookup as score 0 and keeps going.
type Provider interface {
	GetQualityScore(ctx context.Context, jobID uuid.UUID) (job.QualityScore, error)
}

// SourceWeights maps a posting source to its reliability score.
var SourceWeights = map[string]float64{
	"linkedin":     85,
	"indeed":       85,
	"glassdoor":    85,
	"google":       70,
	"company_site": 95,
	"unknown":      40,
}

// JobLookup is the narrow read the scorer needs from storage.
type JobLookup interface {
	GetJobByID(ctx context.Context, jobID uuid.UUID) (job.JobRecord, error)
}

// Scorer computes quality scores from stored job records.
type Scorer struct {
	jobs JobLookup
	now  func() time.Time
}

func NewScorer(jobs JobLookup) *Scorer {
	return &Scorer{jobs: jobs, now: time.Now}
}

func (s *Scorer) GetQualityScore(ctx context.Context, jobID uuid.UUID) (job.QualityScore, error) {
	j, err := s.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return job.QualityScore{}, err
	}
	return s.Score(j), nil
}

// Score combines completeness, source reliability and freshness into a
// single overall value in [0,100].
func (s *Scorer) Score(j job.JobRecord) job.QualityScore {
	q := job.QualityScore{
		Completeness:      Completeness(j),
		SourceReliability: SourceReliability(j.Source),
		Freshness:         s.freshness(j),
	}
	q.Overall = q.Completeness*0.5 + q.SourceReliability*0.25 + q.Freshness*0.25
	return q
}

// Completeness rewards filled-in fields, with the description counting
// only when it carries real content.
func Completeness(j job.JobRecord) float64 {
	score := 0.0
	if strings.TrimSpace(j.Title) != "" {
		score += 20
	}
	if strings.TrimSpace(j.Company) != "" {
		score += 20
	}
	if strings.TrimSpace(j.Location) != "" {
		score += 20
	}
	if len(strings.TrimSpace(j.Description)) > 100 {
		score += 20
	}
	if strings.TrimSpace(j.URL) != "" {
		score += 20
	}
	return score
}

func SourceReliability(source string) float64 {
	source = strings.TrimSpace(strings.ToLower(source))
	if source == "" {
		source = "unknown"
	}
	if w, ok := SourceWeights[source]; ok {
		return w
	}
	return 40
}

func (s *Scorer) freshness(j job.JobRecord) float64 {
	var t time.Time
	if j.PostedAt != nil && !j.PostedAt.IsZero() {
		t = *j.PostedAt
	} else if !j.CreatedAt.IsZero() {
		t = j.CreatedAt
	} else {
		return 0
	}

	age := s.now().UTC().Sub(t)
	if age < 0 {
		age = 0
	}

	switch {
	case age <= 24*time.Hour:
		return 100
	case age <= 3*24*time.Hour:
		return 80
	case age <= 7*24*time.Hour:
		return 60
	case age <= 14*24*time.Hour:
		return 40
	case age <= 30*24*time.Hour:
		return 20
	default:
		return 0
	}
}
