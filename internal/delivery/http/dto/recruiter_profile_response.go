package dto

import (
	"github.com/google/uuid"

	"jobboard/internal/domain/recruiter"
)

type RecruiterProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CompanyName string    `json:"company_name,omitempty"`
	CompanySize string    `json:"company_size,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Website     string    `json:"website,omitempty"`

	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	Location string `json:"location"`

	CompanyDescription string `json:"company_description,omitempty"`
}

func NewRecruiterProfileResponse(p recruiter.Profile) RecruiterProfileResponse {
	return RecruiterProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		CompanySize: p.CompanySize,
		Industry:    p.Industry,
		Phone:       p.Phone,
		Website:     p.Website,

		City:     p.City,
		State:    p.State,
		Country:  p.Country,
		Location: p.FullLocation(),

		CompanyDescription: p.CompanyDescription,
	}
}
