package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

const applicationColumns = `id, job_id, applicant_id, cover_letter, status, applied_at, updated_at`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a job.Application) (job.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = job.StatusApplied
	}

	// Two concurrent applies can both pass the usecase pre-check; the
	// unique (job_id, applicant_id) constraint settles it here.
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_applications (id, job_id, applicant_id, cover_letter, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.JobID, a.ApplicantID, a.CoverLetter, a.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return job.Application{}, job.ErrAlreadyApplied
		}
		return job.Application{}, err
	}
	return r.GetByID(ctx, a.ID)
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]job.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM job_applications
		 WHERE applicant_id = $1 ORDER BY applied_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]job.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM job_applications
		 WHERE job_id = $1 ORDER BY applied_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (job.Application, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return job.Application{}, err
	}
	if affected == 0 {
		return job.Application{}, job.ErrApplicationNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresApplicationRepository) CountByApplicant(ctx context.Context, applicantID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM job_applications WHERE applicant_id = $1`, applicantID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresApplicationRepository) CountByJobs(ctx context.Context, posterID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM job_applications ja
		 JOIN jobs j ON j.id = ja.job_id
		 WHERE j.posted_by = $1`, posterID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanApplication(row database.Row) (job.Application, error) {
	var a job.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter, &a.Status, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return job.Application{}, job.ErrApplicationNotFound
		}
		return job.Application{}, err
	}
	return a, nil
}

func scanApplications(rows database.Rows) ([]job.Application, error) {
	out := make([]job.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
