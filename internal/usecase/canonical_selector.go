package usecase

import (
	"context"
	"log"
	"time"

	"job-radar/internal/domain/job"
	"job-radar/internal/quality"

	"github.com/google/uuid"
)

const defaultQualityTimeout = 3 * time.Second

// CanonicalSelector resolves which side of a duplicate pair survives as
// canonical, using externally supplied quality scores.
type CanonicalSelector struct {
	quality quality.Provider
	timeout time.Duration
	logger  *log.Logger
}

func NewCanonicalSelector(provider quality.Provider, timeout time.Duration, logger *log.Logger) *CanonicalSelector {
	if timeout <= 0 {
		timeout = defaultQualityTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CanonicalSelector{quality: provider, timeout: timeout, logger: logger}
}

// Resolve fetches both quality scores concurrently and picks the job
// with the higher overall score as canonical. Equal scores resolve to
// first. A failed or timed-out lookup counts as score 0 rather than
// aborting the run.
func (s *CanonicalSelector) Resolve(ctx context.Context, first, second job.JobRecord) (canonicalID, duplicateID uuid.UUID) {
	scoreFirst := make(chan float64, 1)
	scoreSecond := make(chan float64, 1)

	go func() { scoreFirst <- s.fetchOverall(ctx, first.ID) }()
	go func() { scoreSecond <- s.fetchOverall(ctx, second.ID) }()

	qFirst := <-scoreFirst
	qSecond := <-scoreSecond

	if qFirst >= qSecond {
		return first.ID, second.ID
	}
	return second.ID, first.ID
}

func (s *CanonicalSelector) fetchOverall(ctx context.Context, jobID uuid.UUID) float64 {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q, err := s.quality.GetQualityScore(ctx, jobID)
	if err != nil {
		s.logger.Printf("quality lookup failed | job_id=%s err=%v (treating as 0)", jobID, err)
		return 0
	}
	return q.Overall
}
