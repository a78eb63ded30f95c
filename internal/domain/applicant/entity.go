package applicant

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RemoteOnly   = "remote_only"
	RemoteHybrid = "hybrid"
	OnsiteOnly   = "onsite_only"
	Flexible     = "flexible"
)

func IsValidRemotePreference(v string) bool {
	switch v {
	case RemoteOnly, RemoteHybrid, OnsiteOnly, Flexible:
		return true
	}
	return false
}

// Profile carries the applicant's professional record. Skills are an
// ordered list here; the comma-text serialization lives in the repository.
type Profile struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Headline   string
	Phone      string
	City       string
	State      string
	Country    string
	PostalCode string
	Latitude   *float64
	Longitude  *float64

	// Location is the derived display string, recomputed on every save
	// from city/state/country.
	Location string

	WillingToRelocate    bool
	RemoteWorkPreference string
	Summary              string
	Skills               []string

	LinkedinURL  string
	GithubURL    string
	PortfolioURL string
	OtherURL     string

	IsPublic      bool
	IsSeekingJobs bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) FullLocation() string {
	return joinNonEmpty(p.City, p.State, p.Country)
}

func (p Profile) ShortLocation() string {
	return joinNonEmpty(p.City, p.State)
}

func (p Profile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

type Education struct {
	ID                 uuid.UUID
	ApplicantProfileID uuid.UUID
	Institution        string
	Degree             string
	FieldOfStudy       string
	StartDate          time.Time
	EndDate            *time.Time
	IsCurrent          bool
	GPA                *float64
	Description        string
	Order              int
}

type WorkExperience struct {
	ID                 uuid.UUID
	ApplicantProfileID uuid.UUID
	Company            string
	Position           string
	StartDate          time.Time
	EndDate            *time.Time
	IsCurrent          bool
	Location           string
	Description        string
	Order              int
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}
