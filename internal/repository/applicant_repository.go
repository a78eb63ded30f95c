package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/applicant"

	"github.com/google/uuid"
)

const applicantProfileColumns = `id, user_id, headline, phone,
	city, state, country, postal_code, latitude, longitude, location,
	willing_to_relocate, remote_work_preference, summary, skills,
	linkedin_url, github_url, portfolio_url, other_url,
	is_public, is_seeking_jobs, created_at, updated_at`

type PostgresApplicantRepository struct {
	db database.DB
}

func NewPostgresApplicantRepository(db database.DB) *PostgresApplicantRepository {
	return &PostgresApplicantRepository{db: db}
}

func (r *PostgresApplicantRepository) EnsureProfile(ctx context.Context, userID uuid.UUID) (applicant.Profile, error) {
	// ON CONFLICT keeps this idempotent: concurrent first accesses create
	// exactly one row between them.
	_, err := r.db.Exec(ctx,
		`INSERT INTO applicant_profiles (id, user_id) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO NOTHING`,
		uuid.New(), userID,
	)
	if err != nil {
		return applicant.Profile{}, err
	}
	return r.GetProfileByUserID(ctx, userID)
}

func (r *PostgresApplicantRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (applicant.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicantProfileColumns+` FROM applicant_profiles WHERE user_id = $1`, userID)
	return scanApplicantProfile(row)
}

func (r *PostgresApplicantRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (applicant.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicantProfileColumns+` FROM applicant_profiles WHERE id = $1`, id)
	return scanApplicantProfile(row)
}

func (r *PostgresApplicantRepository) UpdateProfile(ctx context.Context, p applicant.Profile) (applicant.Profile, error) {
	// The display location is derived from city/state/country on every save.
	p.Location = p.FullLocation()

	affected, err := r.db.Exec(ctx,
		`UPDATE applicant_profiles SET
			headline = $2, phone = $3,
			city = $4, state = $5, country = $6, postal_code = $7,
			latitude = $8, longitude = $9, location = $10,
			willing_to_relocate = $11, remote_work_preference = $12,
			summary = $13, skills = $14,
			linkedin_url = $15, github_url = $16, portfolio_url = $17, other_url = $18,
			is_public = $19, is_seeking_jobs = $20, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Headline, p.Phone,
		p.City, p.State, p.Country, p.PostalCode,
		p.Latitude, p.Longitude, p.Location,
		p.WillingToRelocate, p.RemoteWorkPreference,
		p.Summary, joinSkills(p.Skills),
		p.LinkedinURL, p.GithubURL, p.PortfolioURL, p.OtherURL,
		p.IsPublic, p.IsSeekingJobs,
	)
	if err != nil {
		return applicant.Profile{}, err
	}
	if affected == 0 {
		return applicant.Profile{}, applicant.ErrProfileNotFound
	}
	return r.GetProfileByID(ctx, p.ID)
}

func (r *PostgresApplicantRepository) CreateEducation(ctx context.Context, e applicant.Education) (applicant.Education, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO educations (id, applicant_profile_id, institution, degree, field_of_study,
			start_date, end_date, is_current, gpa, description, ord)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.ApplicantProfileID, e.Institution, e.Degree, e.FieldOfStudy,
		e.StartDate, e.EndDate, e.IsCurrent, e.GPA, e.Description, e.Order,
	)
	if err != nil {
		return applicant.Education{}, err
	}
	return e, nil
}

func (r *PostgresApplicantRepository) UpdateEducation(ctx context.Context, e applicant.Education) (applicant.Education, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE educations SET
			institution = $3, degree = $4, field_of_study = $5,
			start_date = $6, end_date = $7, is_current = $8,
			gpa = $9, description = $10, ord = $11
		 WHERE id = $1 AND applicant_profile_id = $2`,
		e.ID, e.ApplicantProfileID, e.Institution, e.Degree, e.FieldOfStudy,
		e.StartDate, e.EndDate, e.IsCurrent, e.GPA, e.Description, e.Order,
	)
	if err != nil {
		return applicant.Education{}, err
	}
	if affected == 0 {
		return applicant.Education{}, applicant.ErrEducationNotFound
	}
	return e, nil
}

func (r *PostgresApplicantRepository) DeleteEducation(ctx context.Context, profileID, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM educations WHERE id = $1 AND applicant_profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return applicant.ErrEducationNotFound
	}
	return nil
}

func (r *PostgresApplicantRepository) ListEducation(ctx context.Context, profileID uuid.UUID) ([]applicant.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, applicant_profile_id, institution, degree, field_of_study,
			start_date, end_date, is_current, gpa, description, ord
		 FROM educations
		 WHERE applicant_profile_id = $1
		 ORDER BY ord DESC, end_date DESC NULLS FIRST, start_date DESC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applicant.Education, 0)
	for rows.Next() {
		var e applicant.Education
		err := rows.Scan(&e.ID, &e.ApplicantProfileID, &e.Institution, &e.Degree, &e.FieldOfStudy,
			&e.StartDate, &e.EndDate, &e.IsCurrent, &e.GPA, &e.Description, &e.Order)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicantRepository) CreateExperience(ctx context.Context, w applicant.WorkExperience) (applicant.WorkExperience, error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO work_experiences (id, applicant_profile_id, company, position,
			start_date, end_date, is_current, location, description, ord)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		w.ID, w.ApplicantProfileID, w.Company, w.Position,
		w.StartDate, w.EndDate, w.IsCurrent, w.Location, w.Description, w.Order,
	)
	if err != nil {
		return applicant.WorkExperience{}, err
	}
	return w, nil
}

func (r *PostgresApplicantRepository) UpdateExperience(ctx context.Context, w applicant.WorkExperience) (applicant.WorkExperience, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE work_experiences SET
			company = $3, position = $4,
			start_date = $5, end_date = $6, is_current = $7,
			location = $8, description = $9, ord = $10
		 WHERE id = $1 AND applicant_profile_id = $2`,
		w.ID, w.ApplicantProfileID, w.Company, w.Position,
		w.StartDate, w.EndDate, w.IsCurrent, w.Location, w.Description, w.Order,
	)
	if err != nil {
		return applicant.WorkExperience{}, err
	}
	if affected == 0 {
		return applicant.WorkExperience{}, applicant.ErrExperienceNotFound
	}
	return w, nil
}

func (r *PostgresApplicantRepository) DeleteExperience(ctx context.Context, profileID, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM work_experiences WHERE id = $1 AND applicant_profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return applicant.ErrExperienceNotFound
	}
	return nil
}

func (r *PostgresApplicantRepository) ListExperience(ctx context.Context, profileID uuid.UUID) ([]applicant.WorkExperience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, applicant_profile_id, company, position,
			start_date, end_date, is_current, location, description, ord
		 FROM work_experiences
		 WHERE applicant_profile_id = $1
		 ORDER BY ord DESC, end_date DESC NULLS FIRST, start_date DESC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applicant.WorkExperience, 0)
	for rows.Next() {
		var w applicant.WorkExperience
		err := rows.Scan(&w.ID, &w.ApplicantProfileID, &w.Company, &w.Position,
			&w.StartDate, &w.EndDate, &w.IsCurrent, &w.Location, &w.Description, &w.Order)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplicantProfile(row database.Row) (applicant.Profile, error) {
	var (
		p      applicant.Profile
		skills string
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Headline, &p.Phone,
		&p.City, &p.State, &p.Country, &p.PostalCode,
		&p.Latitude, &p.Longitude, &p.Location,
		&p.WillingToRelocate, &p.RemoteWorkPreference, &p.Summary, &skills,
		&p.LinkedinURL, &p.GithubURL, &p.PortfolioURL, &p.OtherURL,
		&p.IsPublic, &p.IsSeekingJobs, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return applicant.Profile{}, applicant.ErrProfileNotFound
		}
		return applicant.Profile{}, err
	}
	p.Skills = splitSkills(skills)
	return p, nil
}
