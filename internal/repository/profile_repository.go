package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-radar/internal/database"
	"job-radar/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (profile.CandidateProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (profile.CandidateProfile, error) {
	p := profile.CandidateProfile{UserID: userID}

	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(location, '') FROM profiles WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&p.Location); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.CandidateProfile{}, ErrProfileNotFound
		}
		return profile.CandidateProfile{}, err
	}

	skills, err := r.listSkills(ctx, userID)
	if err != nil {
		return profile.CandidateProfile{}, err
	}
	p.Skills = skills

	exps, err := r.listExperiences(ctx, userID)
	if err != nil {
		return profile.CandidateProfile{}, err
	}
	p.Experiences = exps

	return p, nil
}

func (r *PostgresProfileRepository) listSkills(ctx context.Context, userID uuid.UUID) ([]profile.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM user_skills WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Skill, 0)
	for rows.Next() {
		var s profile.Skill
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) listExperiences(ctx context.Context, userID uuid.UUID) ([]profile.WorkExperience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(company, ''), COALESCE(position, ''), COALESCE(description, ''),
			start_date, end_date, is_current
		 FROM work_experiences
		 WHERE user_id = $1
		 ORDER BY start_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.WorkExperience, 0)
	for rows.Next() {
		var e profile.WorkExperience
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.Description, &e.StartDate, &e.EndDate, &e.Current); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
