package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

type JobResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements,omitempty"`

	JobType         string `json:"job_type"`
	RemoteType      string `json:"remote_type"`
	ExperienceLevel string `json:"experience_level"`

	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`
	SalaryPeriod   string   `json:"salary_period,omitempty"`
	SalaryDisplay  string   `json:"salary_display"`

	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Location string `json:"location"`

	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	VisaSponsorship bool   `json:"visa_sponsorship"`
	Benefits        string `json:"benefits,omitempty"`

	IsActive            bool   `json:"is_active"`
	ApplicationDeadline string `json:"application_deadline,omitempty"`
	CreatedAt           string `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	deadline := ""
	if j.ApplicationDeadline != nil {
		deadline = j.ApplicationDeadline.UTC().Format(time.RFC3339)
	}

	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Description:  j.Description,
		Requirements: j.Requirements,

		JobType:         j.JobType,
		RemoteType:      j.RemoteType,
		ExperienceLevel: j.ExperienceLevel,

		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		SalaryCurrency: j.SalaryCurrency,
		SalaryPeriod:   j.SalaryPeriod,
		SalaryDisplay:  j.SalaryDisplay(),

		City:     j.City,
		State:    j.State,
		Country:  j.Country,
		Location: j.LocationDisplay(),

		RequiredSkills:  j.RequiredSkills,
		PreferredSkills: j.PreferredSkills,

		VisaSponsorship: j.VisaSponsorship,
		Benefits:        j.Benefits,

		IsActive:            j.IsActive,
		ApplicationDeadline: deadline,
		CreatedAt:           j.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

type JobSearchResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

type JobDetailResponse struct {
	Job        JobResponse `json:"job"`
	HasApplied bool        `json:"has_applied"`
}
