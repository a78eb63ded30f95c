package dto

import (
	"github.com/google/uuid"

	"jobboard/internal/repository"
	"jobboard/internal/usecase"
)

type CandidateResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Headline  string    `json:"headline,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Location  string    `json:"location,omitempty"`
	Skills    []string  `json:"skills"`

	WillingToRelocate    bool   `json:"willing_to_relocate"`
	RemoteWorkPreference string `json:"remote_work_preference,omitempty"`
	IsSeekingJobs        bool   `json:"is_seeking_jobs"`
}

func NewCandidateResponse(row repository.CandidateRow) CandidateResponse {
	return CandidateResponse{
		ProfileID: row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Headline:  row.Headline,
		Summary:   row.Summary,
		Location:  row.Location,
		Skills:    row.Skills,

		WillingToRelocate:    row.WillingToRelocate,
		RemoteWorkPreference: row.RemoteWorkPreference,
		IsSeekingJobs:        row.IsSeekingJobs,
	}
}

type CandidateSearchResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`

	UnsupportedFilters []string `json:"unsupported_filters,omitempty"`
}

func NewCandidateSearchResponse(res usecase.CandidateSearchResult) CandidateSearchResponse {
	candidates := make([]CandidateResponse, 0, len(res.Candidates))
	for _, row := range res.Candidates {
		candidates = append(candidates, NewCandidateResponse(row))
	}
	return CandidateSearchResponse{
		Candidates: candidates,
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,

		UnsupportedFilters: res.UnsupportedFilters,
	}
}

type CandidateDetailResponse struct {
	Profile     ApplicantProfileResponse `json:"profile"`
	FirstName   string                   `json:"first_name"`
	LastName    string                   `json:"last_name"`
	Email       string                   `json:"email"`
	Educations  []EducationResponse      `json:"educations"`
	Experiences []WorkExperienceResponse `json:"experiences"`
}

func NewCandidateDetailResponse(d usecase.CandidateDetail) CandidateDetailResponse {
	return CandidateDetailResponse{
		Profile:     NewApplicantProfileResponse(d.Profile),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Educations:  NewEducationResponses(d.Educations),
		Experiences: NewWorkExperienceResponses(d.Experiences),
	}
}
