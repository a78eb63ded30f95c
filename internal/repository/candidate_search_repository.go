package repository

import (
	"context"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/applicant"
)

// CandidateRow is a public applicant profile joined with the owning user's
// identity, as returned by candidate search.
type CandidateRow struct {
	applicant.Profile
	FirstName string
	LastName  string
	Email     string
}

type CandidateSearchRepository interface {
	Search(ctx context.Context, f applicant.SearchFilter) ([]CandidateRow, error)
	CountSearch(ctx context.Context, f applicant.SearchFilter) (int, error)
}

type PostgresCandidateSearchRepository struct {
	db database.DB
}

func NewPostgresCandidateSearchRepository(db database.DB) *PostgresCandidateSearchRepository {
	return &PostgresCandidateSearchRepository{db: db}
}

const candidateColumns = `ap.id, ap.user_id, ap.headline, ap.phone,
	ap.city, ap.state, ap.country, ap.postal_code, ap.latitude, ap.longitude, ap.location,
	ap.willing_to_relocate, ap.remote_work_preference, ap.summary, ap.skills,
	ap.linkedin_url, ap.github_url, ap.portfolio_url, ap.other_url,
	ap.is_public, ap.is_seeking_jobs, ap.created_at, ap.updated_at,
	u.first_name, u.last_name, u.email`

const candidateFrom = ` FROM applicant_profiles ap JOIN users u ON u.id = ap.user_id`

func (r *PostgresCandidateSearchRepository) Search(ctx context.Context, f applicant.SearchFilter) ([]CandidateRow, error) {
	b := buildCandidateSearchWhere(f)

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + candidateColumns + candidateFrom + b.where() +
		` ORDER BY ap.updated_at DESC LIMIT ` + b.arg(limit) + ` OFFSET ` + b.arg(offset)

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateRow, 0)
	for rows.Next() {
		var (
			c      CandidateRow
			skills string
		)
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Headline, &c.Phone,
			&c.City, &c.State, &c.Country, &c.PostalCode, &c.Latitude, &c.Longitude, &c.Location,
			&c.WillingToRelocate, &c.RemoteWorkPreference, &c.Summary, &skills,
			&c.LinkedinURL, &c.GithubURL, &c.PortfolioURL, &c.OtherURL,
			&c.IsPublic, &c.IsSeekingJobs, &c.CreatedAt, &c.UpdatedAt,
			&c.FirstName, &c.LastName, &c.Email,
		)
		if err != nil {
			return nil, err
		}
		c.Skills = splitSkills(skills)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateSearchRepository) CountSearch(ctx context.Context, f applicant.SearchFilter) (int, error) {
	b := buildCandidateSearchWhere(f)

	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1)`+candidateFrom+b.where(), b.args...)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// buildCandidateSearchWhere accumulates the candidate-search predicate set
// over public profiles. ExperienceYears is deliberately not applied here;
// see applicant.SearchFilter.
func buildCandidateSearchWhere(f applicant.SearchFilter) *whereBuilder {
	b := &whereBuilder{}
	b.add("ap.is_public = true")

	if kw := strings.TrimSpace(f.Keywords); kw != "" {
		b.addContains(kw,
			"u.first_name", "u.last_name", "split_part(u.email, '@', 1)",
			"ap.headline", "ap.summary")
	}
	for _, skill := range f.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		b.addContains(skill, "ap.skills")
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		b.addContains(loc, "ap.city", "ap.state", "ap.country", "ap.location")
	}
	if pref := strings.TrimSpace(f.RemotePreference); pref != "" {
		b.add("ap.remote_work_preference = " + b.arg(pref))
	}
	if f.WillingToRelocate {
		b.add("ap.willing_to_relocate = true")
	}
	if f.SeekingJobs {
		b.add("ap.is_seeking_jobs = true")
	}
	if pattern := educationDegreePattern(f.EducationLevel); pattern != "" {
		b.add(`EXISTS (SELECT 1 FROM educations e
			WHERE e.applicant_profile_id = ap.id AND e.degree ILIKE ` + b.arg(pattern) + `)`)
	}

	return b
}

// educationDegreePattern maps an education-level filter value to a degree
// substring. Only these branches have effect; unknown values fall through
// as no filter.
func educationDegreePattern(level string) string {
	switch level {
	case applicant.EducationHighSchool:
		return "%high school%"
	case applicant.EducationAssociate:
		return "%associate%"
	case applicant.EducationBachelor:
		return "%bachelor%"
	case applicant.EducationMaster:
		return "%master%"
	case applicant.EducationPhD:
		return "%phd%"
	}
	return ""
}
