package repository

import (
	"context"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

const jobColumns = `id, posted_by, title, company, description, requirements,
	job_type, remote_type, experience_level,
	salary_min, salary_max, salary_currency, salary_period,
	city, state, country, postal_code,
	required_skills, preferred_skills,
	visa_sponsorship, benefits, is_active, application_deadline,
	created_at, updated_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, posted_by, title, company, description, requirements,
			job_type, remote_type, experience_level,
			salary_min, salary_max, salary_currency, salary_period,
			city, state, country, postal_code,
			required_skills, preferred_skills,
			visa_sponsorship, benefits, is_active, application_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		j.ID, j.PostedBy, j.Title, j.Company, j.Description, j.Requirements,
		j.JobType, j.RemoteType, j.ExperienceLevel,
		j.SalaryMin, j.SalaryMax, j.SalaryCurrency, j.SalaryPeriod,
		j.City, j.State, j.Country, j.PostalCode,
		joinSkills(j.RequiredSkills), joinSkills(j.PreferredSkills),
		j.VisaSponsorship, j.Benefits, j.IsActive, j.ApplicationDeadline,
	)
	if err != nil {
		return job.Job{}, err
	}
	return r.GetByID(ctx, j.ID)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET
			title = $2, company = $3, description = $4, requirements = $5,
			job_type = $6, remote_type = $7, experience_level = $8,
			salary_min = $9, salary_max = $10, salary_currency = $11, salary_period = $12,
			city = $13, state = $14, country = $15, postal_code = $16,
			required_skills = $17, preferred_skills = $18,
			visa_sponsorship = $19, benefits = $20, is_active = $21,
			application_deadline = $22, updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Company, j.Description, j.Requirements,
		j.JobType, j.RemoteType, j.ExperienceLevel,
		j.SalaryMin, j.SalaryMax, j.SalaryCurrency, j.SalaryPeriod,
		j.City, j.State, j.Country, j.PostalCode,
		joinSkills(j.RequiredSkills), joinSkills(j.PreferredSkills),
		j.VisaSponsorship, j.Benefits, j.IsActive, j.ApplicationDeadline,
	)
	if err != nil {
		return job.Job{}, err
	}
	if affected == 0 {
		return job.Job{}, job.ErrNotFound
	}
	return r.GetByID(ctx, j.ID)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJobRow(row)
}

func (r *PostgresJobRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND is_active = true`, id)
	return scanJobRow(row)
}

func (r *PostgresJobRepository) ListByPoster(ctx context.Context, posterID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE posted_by = $1 ORDER BY created_at DESC`,
		posterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PostgresJobRepository) Search(ctx context.Context, f job.SearchFilter) ([]job.Job, error) {
	b := buildJobSearchWhere(f)

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + jobColumns + ` FROM jobs` + b.where() +
		` ORDER BY created_at DESC LIMIT ` + b.arg(limit) + ` OFFSET ` + b.arg(offset)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PostgresJobRepository) CountSearch(ctx context.Context, f job.SearchFilter) (int, error) {
	b := buildJobSearchWhere(f)

	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`+b.where(), b.args...)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// buildJobSearchWhere accumulates the job-search predicate set. The base
// restriction is always active jobs; each present filter narrows further.
func buildJobSearchWhere(f job.SearchFilter) *whereBuilder {
	b := &whereBuilder{}
	b.add("is_active = true")

	if kw := strings.TrimSpace(f.Keywords); kw != "" {
		b.addContains(kw, "title", "company", "description", "required_skills")
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		b.addContains(loc, "city", "state", "country")
	}
	if len(f.JobTypes) > 0 {
		b.add("job_type = ANY(" + b.arg(f.JobTypes) + ")")
	}
	if len(f.RemoteTypes) > 0 {
		b.add("remote_type = ANY(" + b.arg(f.RemoteTypes) + ")")
	}
	if len(f.ExperienceLevels) > 0 {
		b.add("experience_level = ANY(" + b.arg(f.ExperienceLevels) + ")")
	}
	if f.SalaryMin != nil {
		b.add("salary_min >= " + b.arg(*f.SalaryMin))
	}
	if f.VisaSponsorship {
		b.add("visa_sponsorship = true")
	}
	// AND across skills, OR across the two skill fields per skill.
	for _, skill := range f.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		b.addContains(skill, "required_skills", "preferred_skills")
	}

	return b
}

func scanJobRow(row database.Row) (job.Job, error) {
	var (
		j                   job.Job
		required, preferred string
	)
	err := row.Scan(
		&j.ID, &j.PostedBy, &j.Title, &j.Company, &j.Description, &j.Requirements,
		&j.JobType, &j.RemoteType, &j.ExperienceLevel,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency, &j.SalaryPeriod,
		&j.City, &j.State, &j.Country, &j.PostalCode,
		&required, &preferred,
		&j.VisaSponsorship, &j.Benefits, &j.IsActive, &j.ApplicationDeadline,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.RequiredSkills = splitSkills(required)
	j.PreferredSkills = splitSkills(preferred)
	return j, nil
}

func scanJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJobRow(rows)
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
