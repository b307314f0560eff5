package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-radar/internal/domain/matchscore"
	"job-radar/internal/domain/profile"
	"job-radar/internal/repository"

	"github.com/google/uuid"
)

const matchCacheTTL = 10 * time.Minute

// MatchCache is the narrow cache surface the match usecase needs.
// A nil implementation or a down Redis simply bypasses caching.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type MatchUsecase interface {
	ScoreJob(ctx context.Context, userID, jobID uuid.UUID) (matchscore.Result, error)
}

type Match struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	cache    MatchCache
	logger   *log.Logger
}

func NewMatchUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository, cache MatchCache, logger *log.Logger) *Match {
	if logger == nil {
		logger = log.Default()
	}
	return &Match{jobs: jobs, profiles: profiles, cache: cache, logger: logger}
}

// ScoreJob computes the compatibility score between the user's profile
// and one job. The scoring itself is pure; the only I/O is loading the
// two inputs and the optional cache round-trip.
func (u *Match) ScoreJob(ctx context.Context, userID, jobID uuid.UUID) (matchscore.Result, error) {
	if userID == uuid.Nil {
		return matchscore.Result{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return matchscore.Result{}, ErrJobNotFound
	}

	key := matchCacheKey(userID, jobID)
	if u.cache != nil {
		var cached matchscore.Result
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rec, err := u.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return matchscore.Result{}, mapJobLookupErr(err)
	}

	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return matchscore.Result{}, ErrInternal
		}
		// A user without a profile still gets a score: an empty one
		// reads as no skills, no history, no location.
		p = profile.CandidateProfile{UserID: userID}
	}

	required, err := u.jobs.ListRequiredSkills(ctx, jobID)
	if err != nil {
		return matchscore.Result{}, ErrInternal
	}

	res := matchscore.Calculate(p, matchscore.Job{
		Title:          rec.Title,
		Company:        rec.Company,
		Location:       rec.Location,
		Description:    rec.Description,
		RequiredSkills: required,
	})

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, res, matchCacheTTL); err != nil {
			u.logger.Printf("match cache write failed | key=%s err=%v", key, err)
		}
	}
	return res, nil
}

func matchCacheKey(userID, jobID uuid.UUID) string {
	return fmt.Sprintf("match:%s:%s", userID, jobID)
}
