package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/applicant"
)

type ApplicantProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Headline string    `json:"headline,omitempty"`
	Phone    string    `json:"phone,omitempty"`

	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	Country    string   `json:"country,omitempty"`
	PostalCode string   `json:"postal_code,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Location   string   `json:"location"`

	WillingToRelocate    bool     `json:"willing_to_relocate"`
	RemoteWorkPreference string   `json:"remote_work_preference,omitempty"`
	Summary              string   `json:"summary,omitempty"`
	Skills               []string `json:"skills"`

	LinkedinURL  string `json:"linkedin_url,omitempty"`
	GithubURL    string `json:"github_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
	OtherURL     string `json:"other_url,omitempty"`

	IsPublic      bool `json:"is_public"`
	IsSeekingJobs bool `json:"is_seeking_jobs"`
}

func NewApplicantProfileResponse(p applicant.Profile) ApplicantProfileResponse {
	return ApplicantProfileResponse{
		ID:       p.ID,
		UserID:   p.UserID,
		Headline: p.Headline,
		Phone:    p.Phone,

		City:       p.City,
		State:      p.State,
		Country:    p.Country,
		PostalCode: p.PostalCode,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Location:   p.Location,

		WillingToRelocate:    p.WillingToRelocate,
		RemoteWorkPreference: p.RemoteWorkPreference,
		Summary:              p.Summary,
		Skills:               p.Skills,

		LinkedinURL:  p.LinkedinURL,
		GithubURL:    p.GithubURL,
		PortfolioURL: p.PortfolioURL,
		OtherURL:     p.OtherURL,

		IsPublic:      p.IsPublic,
		IsSeekingJobs: p.IsSeekingJobs,
	}
}

type EducationResponse struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"field_of_study,omitempty"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date,omitempty"`
	IsCurrent    bool      `json:"is_current"`
	GPA          *float64  `json:"gpa,omitempty"`
	Description  string    `json:"description,omitempty"`
}

func NewEducationResponse(e applicant.Education) EducationResponse {
	end := ""
	if e.EndDate != nil {
		end = e.EndDate.UTC().Format(dateLayout)
	}
	return EducationResponse{
		ID:           e.ID,
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartDate:    e.StartDate.UTC().Format(dateLayout),
		EndDate:      end,
		IsCurrent:    e.IsCurrent,
		GPA:          e.GPA,
		Description:  e.Description,
	}
}

func NewEducationResponses(items []applicant.Education) []EducationResponse {
	out := make([]EducationResponse, 0, len(items))
	for _, e := range items {
		out = append(out, NewEducationResponse(e))
	}
	return out
}

type WorkExperienceResponse struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	IsCurrent   bool      `json:"is_current"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
}

func NewWorkExperienceResponse(w applicant.WorkExperience) WorkExperienceResponse {
	end := ""
	if w.EndDate != nil {
		end = w.EndDate.UTC().Format(dateLayout)
	}
	return WorkExperienceResponse{
		ID:          w.ID,
		Company:     w.Company,
		Position:    w.Position,
		StartDate:   w.StartDate.UTC().Format(dateLayout),
		EndDate:     end,
		IsCurrent:   w.IsCurrent,
		Location:    w.Location,
		Description: w.Description,
	}
}

func NewWorkExperienceResponses(items []applicant.WorkExperience) []WorkExperienceResponse {
	out := make([]WorkExperienceResponse, 0, len(items))
	for _, w := range items {
		out = append(out, NewWorkExperienceResponse(w))
	}
	return out
}

const dateLayout = time.DateOnly
