package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-radar/internal/database"
	"job-radar/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	// FetchActiveJobs returns every non-archived job for a user.
	FetchActiveJobs(ctx context.Context, userID uuid.UUID) ([]job.JobRecord, error)
	GetJobByID(ctx context.Context, jobID uuid.UUID) (job.JobRecord, error)
	// GetOwnedJob returns ErrJobNotFound when the job does not exist or
	// belongs to a different user; callers cannot tell the two apart.
	GetOwnedJob(ctx context.Context, jobID, userID uuid.UUID) (job.JobRecord, error)
	ListRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]string, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, user_id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
	COALESCE(description, ''), COALESCE(url, ''), COALESCE(source, ''), archived, posted_at, created_at`

func (r *PostgresJobRepository) FetchActiveJobs(ctx context.Context, userID uuid.UUID) ([]job.JobRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE user_id = $1 AND archived = FALSE
		 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.JobRecord, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetJobByID(ctx context.Context, jobID uuid.UUID) (job.JobRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	return scanJobRow(row)
}

func (r *PostgresJobRepository) GetOwnedJob(ctx context.Context, jobID, userID uuid.UUID) (job.JobRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND user_id = $2`,
		jobID, userID,
	)
	return scanJobRow(row)
}

func (r *PostgresJobRepository) ListRequiredSkills(ctx context.Context, jobID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_name FROM job_required_skills WHERE job_id = $1 ORDER BY skill_name`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (job.JobRecord, error) {
	var j job.JobRecord
	err := row.Scan(
		&j.ID, &j.UserID, &j.Title, &j.Company, &j.Location,
		&j.Description, &j.URL, &j.Source, &j.Archived, &j.PostedAt, &j.CreatedAt,
	)
	if err != nil {
		return job.JobRecord{}, err
	}
	return j, nil
}

func scanJobRow(row database.Row) (job.JobRecord, error) {
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.JobRecord{}, ErrJobNotFound
		}
		return job.JobRecord{}, err
	}
	return j, nil
}
