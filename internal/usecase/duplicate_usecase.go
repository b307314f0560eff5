package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"job-radar/internal/domain/dedup"
	"job-radar/internal/domain/job"
	"job-radar/internal/repository"
	"job-radar/internal/worker"
	"job-radar/internal/ws"

	"github.com/google/uuid"
)

const defaultDetectionWorkers = 4

// DetectionSummary reports one detection run.
type DetectionSummary struct {
	JobsScanned int
	Partitions  int
	PairsFound  int
}

type DuplicateUsecase interface {
	// DetectDuplicates runs blocking-based detection over the user's
	// active jobs. A threshold <= 0 falls back to the configured one.
	DetectDuplicates(ctx context.Context, userID uuid.UUID, threshold float64) (DetectionSummary, error)
	ListDuplicates(ctx context.Context, userID uuid.UUID) ([]job.DuplicatePair, error)
	MergeManually(ctx context.Context, canonicalID, duplicateID, requestingUserID uuid.UUID) (job.DuplicatePair, error)
	Unmerge(ctx context.Context, canonicalID, duplicateID, requestingUserID uuid.UUID) error
}

type Duplicates struct {
	jobs      repository.JobRepository
	pairs     repository.DuplicateRepository
	selector  *CanonicalSelector
	threshold float64
	workers   int
	logger    *log.Logger
}

func NewDuplicateUsecase(jobs repository.JobRepository, pairs repository.DuplicateRepository, selector *CanonicalSelector, threshold float64, workers int, logger *log.Logger) *Duplicates {
	if threshold <= 0 {
		threshold = dedup.DefaultThreshold
	}
	if workers <= 0 {
		workers = defaultDetectionWorkers
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Duplicates{jobs: jobs, pairs: pairs, selector: selector, threshold: threshold, workers: workers, logger: logger}
}

func (u *Duplicates) DetectDuplicates(ctx context.Context, userID uuid.UUID, threshold float64) (DetectionSummary, error) {
	if userID == uuid.Nil {
		return DetectionSummary{}, ErrUnauthorized
	}
	if threshold <= 0 {
		threshold = u.threshold
	}

	jobs, err := u.jobs.FetchActiveJobs(ctx, userID)
	if err != nil {
		u.logger.Printf("detection aborted, job fetch failed | user_id=%s err=%v", userID, err)
		return DetectionSummary{}, ErrInternal
	}
	if len(jobs) == 0 {
		return DetectionSummary{}, nil
	}

	partitions := dedup.PartitionByCompany(jobs)
	found := u.scanPartitions(ctx, partitions, threshold)

	if err := u.persist(ctx, found); err != nil {
		u.logger.Printf("detection failed, could not persist pairs | user_id=%s pairs=%d err=%v", userID, len(found), err)
		return DetectionSummary{}, ErrInternal
	}

	summary := DetectionSummary{
		JobsScanned: len(jobs),
		Partitions:  len(partitions),
		PairsFound:  len(found),
	}
	u.logger.Printf("detection complete | user_id=%s jobs=%d partitions=%d pairs=%d", userID, summary.JobsScanned, summary.Partitions, summary.PairsFound)
	ws.NotifyDuplicatesDetected(userID, summary.PairsFound)
	return summary, nil
}

// scanPartitions fans partitions out over the worker pool. Each
// partition produces a disjoint set of pairs, so the only shared state
// is the collection slice.
func (u *Duplicates) scanPartitions(ctx context.Context, partitions []dedup.Partition, threshold float64) []job.DuplicatePair {
	var mu sync.Mutex
	var found []job.DuplicatePair

	pool := worker.NewPool(u.workers, len(partitions))
	for _, p := range partitions {
		part := p
		pool.Submit(func(ctx context.Context) error {
			pairs := u.scanPartition(ctx, part, threshold)
			if len(pairs) == 0 {
				return nil
			}
			mu.Lock()
			found = append(found, pairs...)
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	for range pool.Run(ctx) {
	}
	return found
}

func (u *Duplicates) scanPartition(ctx context.Context, p dedup.Partition, threshold float64) []job.DuplicatePair {
	candidates := dedup.FindCandidates(p, threshold)
	if len(candidates) == 0 {
		return nil
	}

	out := make([]job.DuplicatePair, 0, len(candidates))
	for _, c := range candidates {
		canonicalID, duplicateID := u.selector.Resolve(ctx, c.First, c.Second)
		out = append(out, job.DuplicatePair{
			CanonicalJobID: canonicalID,
			DuplicateJobID: duplicateID,
			Score:          c.Comparison.Score,
			Method:         c.Comparison.Method,
		})
	}
	return out
}

func (u *Duplicates) persist(ctx context.Context, pairs []job.DuplicatePair) error {
	if len(pairs) == 0 {
		return nil
	}
	if err := u.pairs.UpsertDuplicatePairs(ctx, pairs); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.CanonicalJobID]; ok {
			continue
		}
		seen[p.CanonicalJobID] = struct{}{}
		if err := u.pairs.MarkCanonical(ctx, p.CanonicalJobID); err != nil {
			return err
		}
	}
	return nil
}

func (u *Duplicates) ListDuplicates(ctx context.Context, userID uuid.UUID) ([]job.DuplicatePair, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	pairs, err := u.pairs.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return pairs, nil
}

// MergeManually records a user-confirmed duplicate pair. Both jobs must
// belong to the requesting user; a job that does not is reported as not
// found, indistinguishable from a missing one.
func (u *Duplicates) MergeManually(ctx context.Context, canonicalID, duplicateID, requestingUserID uuid.UUID) (job.DuplicatePair, error) {
	canonical, duplicate, err := u.ownedPair(ctx, canonicalID, duplicateID, requestingUserID)
	if err != nil {
		return job.DuplicatePair{}, err
	}

	cmp := dedup.Compare(canonical, duplicate)
	pair := job.DuplicatePair{
		CanonicalJobID: canonical.ID,
		DuplicateJobID: duplicate.ID,
		Score:          cmp.Score,
		Method:         job.DetectionManual,
	}

	if err := u.persist(ctx, []job.DuplicatePair{pair}); err != nil {
		u.logger.Printf("manual merge failed | canonical=%s duplicate=%s err=%v", canonicalID, duplicateID, err)
		return job.DuplicatePair{}, ErrInternal
	}
	return pair, nil
}

func (u *Duplicates) Unmerge(ctx context.Context, canonicalID, duplicateID, requestingUserID uuid.UUID) error {
	if _, _, err := u.ownedPair(ctx, canonicalID, duplicateID, requestingUserID); err != nil {
		return err
	}
	if err := u.pairs.RemoveDuplicatePair(ctx, canonicalID, duplicateID); err != nil {
		u.logger.Printf("unmerge failed | canonical=%s duplicate=%s err=%v", canonicalID, duplicateID, err)
		return ErrInternal
	}
	return nil
}

func (u *Duplicates) ownedPair(ctx context.Context, canonicalID, duplicateID, requestingUserID uuid.UUID) (job.JobRecord, job.JobRecord, error) {
	if requestingUserID == uuid.Nil {
		return job.JobRecord{}, job.JobRecord{}, ErrUnauthorized
	}
	if canonicalID == uuid.Nil || duplicateID == uuid.Nil {
		return job.JobRecord{}, job.JobRecord{}, ErrInvalidInput
	}
	if canonicalID == duplicateID {
		return job.JobRecord{}, job.JobRecord{}, ErrSamePair
	}

	canonical, err := u.jobs.GetOwnedJob(ctx, canonicalID, requestingUserID)
	if err != nil {
		return job.JobRecord{}, job.JobRecord{}, mapJobLookupErr(err)
	}
	duplicate, err := u.jobs.GetOwnedJob(ctx, duplicateID, requestingUserID)
	if err != nil {
		return job.JobRecord{}, job.JobRecord{}, mapJobLookupErr(err)
	}
	return canonical, duplicate, nil
}

func mapJobLookupErr(err error) error {
	if errors.Is(err, repository.ErrJobNotFound) {
		return ErrJobNotFound
	}
	return ErrInternal
}
