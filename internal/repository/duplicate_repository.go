package repository

import (
	"context"
	"time"

	"job-radar/internal/database"
	"job-radar/internal/domain/job"

	"github.com/google/uuid"
)

type DuplicateRepository interface {
	// UpsertDuplicatePairs is idempotent: rows are keyed on
	// (canonical_job_id, duplicate_job_id), so re-running detection on
	// unchanged data only refreshes scores.
	UpsertDuplicatePairs(ctx context.Context, pairs []job.DuplicatePair) error
	RemoveDuplicatePair(ctx context.Context, canonicalID, duplicateID uuid.UUID) error
	MarkCanonical(ctx context.Context, jobID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]job.DuplicatePair, error)
}

type PostgresDuplicateRepository struct {
	db database.DB
}

func NewPostgresDuplicateRepository(db database.DB) *PostgresDuplicateRepository {
	return &PostgresDuplicateRepository{db: db}
}

func (r *PostgresDuplicateRepository) UpsertDuplicatePairs(ctx context.Context, pairs []job.DuplicatePair) error {
	if len(pairs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	for _, p := range pairs {
		_, err := tx.Exec(ctx,
			`INSERT INTO duplicate_pairs (
				id, canonical_job_id, duplicate_job_id,
				title_score, company_score, location_score, description_score,
				overall_score, confidence, detection_method, detected_at
			 ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			 ON CONFLICT (canonical_job_id, duplicate_job_id) DO UPDATE SET
				title_score = EXCLUDED.title_score,
				company_score = EXCLUDED.company_score,
				location_score = EXCLUDED.location_score,
				description_score = EXCLUDED.description_score,
				overall_score = EXCLUDED.overall_score,
				confidence = EXCLUDED.confidence,
				detection_method = EXCLUDED.detection_method,
				detected_at = EXCLUDED.detected_at`,
			uuid.New(),
			p.CanonicalJobID,
			p.DuplicateJobID,
			p.Score.Title,
			p.Score.Company,
			p.Score.Location,
			p.Score.Description,
			p.Score.Overall,
			string(p.Score.Confidence),
			string(p.Method),
			now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresDuplicateRepository) RemoveDuplicatePair(ctx context.Context, canonicalID, duplicateID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM duplicate_pairs WHERE canonical_job_id = $1 AND duplicate_job_id = $2`,
		canonicalID, duplicateID,
	)
	return err
}

func (r *PostgresDuplicateRepository) MarkCanonical(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE jobs SET is_canonical = TRUE WHERE id = $1`,
		jobID,
	)
	return err
}

func (r *PostgresDuplicateRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]job.DuplicatePair, error) {
	rows, err := r.db.Query(ctx,
		`SELECT dp.canonical_job_id, dp.duplicate_job_id,
			dp.title_score, dp.company_score, dp.location_score, dp.description_score,
			dp.overall_score, dp.confidence, dp.detection_method
		 FROM duplicate_pairs dp
		 JOIN jobs j ON j.id = dp.canonical_job_id
		 WHERE j.user_id = $1
		 ORDER BY dp.overall_score DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.DuplicatePair, 0)
	for rows.Next() {
		var p job.DuplicatePair
		var confidence, method string
		err := rows.Scan(
			&p.CanonicalJobID, &p.DuplicateJobID,
			&p.Score.Title, &p.Score.Company, &p.Score.Location, &p.Score.Description,
			&p.Score.Overall, &confidence, &method,
		)
		if err != nil {
			return nil, err
		}
		p.Score.Confidence = job.ConfidenceTier(confidence)
		p.Method = job.DetectionMethod(method)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
