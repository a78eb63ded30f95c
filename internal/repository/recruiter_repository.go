package repository

import (
	"context"

	"jobboard/internal/database"
	"jobboard/internal/domain/recruiter"

	"github.com/google/uuid"
)

const recruiterProfileColumns = `id, user_id, company_name, company_size, industry,
	phone, website, city, state, country, company_description, created_at, updated_at`

type PostgresRecruiterRepository struct {
	db database.DB
}

func NewPostgresRecruiterRepository(db database.DB) *PostgresRecruiterRepository {
	return &PostgresRecruiterRepository{db: db}
}

func (r *PostgresRecruiterRepository) EnsureProfile(ctx context.Context, userID uuid.UUID) (recruiter.Profile, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO recruiter_profiles (id, user_id) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO NOTHING`,
		uuid.New(), userID,
	)
	if err != nil {
		return recruiter.Profile{}, err
	}
	return r.GetProfileByUserID(ctx, userID)
}

func (r *PostgresRecruiterRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (recruiter.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+recruiterProfileColumns+` FROM recruiter_profiles WHERE user_id = $1`, userID)

	var p recruiter.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanySize, &p.Industry,
		&p.Phone, &p.Website, &p.City, &p.State, &p.Country,
		&p.CompanyDescription, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return recruiter.Profile{}, recruiter.ErrProfileNotFound
		}
		return recruiter.Profile{}, err
	}
	return p, nil
}

func (r *PostgresRecruiterRepository) UpdateProfile(ctx context.Context, p recruiter.Profile) (recruiter.Profile, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE recruiter_profiles SET
			company_name = $2, company_size = $3, industry = $4,
			phone = $5, website = $6,
			city = $7, state = $8, country = $9,
			company_description = $10, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.CompanyName, p.CompanySize, p.Industry,
		p.Phone, p.Website, p.City, p.State, p.Country,
		p.CompanyDescription,
	)
	if err != nil {
		return recruiter.Profile{}, err
	}
	if affected == 0 {
		return recruiter.Profile{}, recruiter.ErrProfileNotFound
	}
	return r.GetProfileByUserID(ctx, p.UserID)
}
