package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   string    `json:"applied_at"`
	UpdatedAt   string    `json:"updated_at"`
}

func NewApplicationResponse(a job.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func NewApplicationResponses(apps []job.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

type ApplicationWithJobResponse struct {
	Application ApplicationResponse `json:"application"`
	Job         JobResponse         `json:"job"`
}
