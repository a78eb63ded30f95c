package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/domain/applicant"
	"jobboard/internal/domain/user"
	"jobboard/internal/repository"
)

const candidateSearchPageSize = 10

// CandidateSearchParams carries the recruiter-facing candidate filters.
// ExperienceYears is accepted but reported back as unsupported instead of
// being applied.
type CandidateSearchParams struct {
	Keywords         string
	Skills           []string
	Location         string
	RemotePreference string

	WillingToRelocate bool
	SeekingJobs       bool

	EducationLevel  string
	ExperienceYears string

	Page int
}

type CandidateSearchResult struct {
	Candidates []repository.CandidateRow
	Total      int
	Page       int
	PageSize   int
	TotalPages int

	// UnsupportedFilters names filters the caller sent that the engine
	// accepted but did not apply.
	UnsupportedFilters []string
}

// CandidateDetail is a full public profile with its history and the owning
// user's identity.
type CandidateDetail struct {
	Profile     applicant.Profile
	FirstName   string
	LastName    string
	Email       string
	Educations  []applicant.Education
	Experiences []applicant.WorkExperience
}

type CandidateSearchUsecase struct {
	candidates repository.CandidateSearchRepository
	applicants applicant.Repository
	users      user.Repository
}

func NewCandidateSearchUsecase(candidates repository.CandidateSearchRepository, applicants applicant.Repository, users user.Repository) *CandidateSearchUsecase {
	return &CandidateSearchUsecase{candidates: candidates, applicants: applicants, users: users}
}

func (uc *CandidateSearchUsecase) Search(ctx context.Context, params CandidateSearchParams) (CandidateSearchResult, error) {
	f := normalizeCandidateFilter(params)

	rows, err := uc.candidates.Search(ctx, f)
	if err != nil {
		return CandidateSearchResult{}, ErrInternal
	}
	total, err := uc.candidates.CountSearch(ctx, f)
	if err != nil {
		return CandidateSearchResult{}, ErrInternal
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	result := CandidateSearchResult{
		Candidates: rows,
		Total:      total,
		Page:       page,
		PageSize:   candidateSearchPageSize,
		TotalPages: (total + candidateSearchPageSize - 1) / candidateSearchPageSize,
	}
	if strings.TrimSpace(params.ExperienceYears) != "" {
		result.UnsupportedFilters = append(result.UnsupportedFilters, "experience_years")
	}
	return result, nil
}

// Get returns one candidate's public profile with education and work
// history. Non-public profiles are indistinguishable from missing ones.
func (uc *CandidateSearchUsecase) Get(ctx context.Context, profileID uuid.UUID) (CandidateDetail, error) {
	p, err := uc.applicants.GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, applicant.ErrProfileNotFound) {
			return CandidateDetail{}, applicant.ErrProfileNotFound
		}
		return CandidateDetail{}, ErrInternal
	}
	if !p.IsPublic {
		return CandidateDetail{}, applicant.ErrProfileNotFound
	}

	u, err := uc.users.GetUserByID(ctx, p.UserID)
	if err != nil {
		return CandidateDetail{}, ErrInternal
	}

	educations, err := uc.applicants.ListEducation(ctx, p.ID)
	if err != nil {
		return CandidateDetail{}, ErrInternal
	}
	experiences, err := uc.applicants.ListExperience(ctx, p.ID)
	if err != nil {
		return CandidateDetail{}, ErrInternal
	}

	return CandidateDetail{
		Profile:     p,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Educations:  educations,
		Experiences: experiences,
	}, nil
}

func normalizeCandidateFilter(params CandidateSearchParams) applicant.SearchFilter {
	page := params.Page
	if page < 1 {
		page = 1
	}

	pref := strings.TrimSpace(params.RemotePreference)
	if !applicant.IsValidRemotePreference(pref) {
		pref = ""
	}

	return applicant.SearchFilter{
		Keywords:         strings.TrimSpace(params.Keywords),
		Skills:           cleanValues(params.Skills, nil),
		Location:         strings.TrimSpace(params.Location),
		RemotePreference: pref,

		WillingToRelocate: params.WillingToRelocate,
		SeekingJobs:       params.SeekingJobs,

		EducationLevel:  strings.TrimSpace(params.EducationLevel),
		ExperienceYears: strings.TrimSpace(params.ExperienceYears),

		Limit:  candidateSearchPageSize,
		Offset: (page - 1) * candidateSearchPageSize,
	}
}
