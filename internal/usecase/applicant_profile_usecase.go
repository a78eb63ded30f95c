package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/domain/applicant"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
)

// ApplicantDashboard is the applicant landing-page summary.
type ApplicantDashboard struct {
	Profile          applicant.Profile
	User             user.User
	ApplicationCount int
	Recent           []ApplicationWithJob
}

type ApplicantProfileUsecase struct {
	applicants   applicant.Repository
	users        user.Repository
	applications job.ApplicationRepository
	jobs         job.Repository
}

func NewApplicantProfileUsecase(applicants applicant.Repository, users user.Repository, applications job.ApplicationRepository, jobs job.Repository) *ApplicantProfileUsecase {
	return &ApplicantProfileUsecase{applicants: applicants, users: users, applications: applications, jobs: jobs}
}

// GetOrCreate returns the caller's profile, creating an empty one on first
// visit so the edit page always has something to render.
func (uc *ApplicantProfileUsecase) GetOrCreate(ctx context.Context, userID uuid.UUID) (applicant.Profile, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return applicant.Profile{}, ErrInternal
	}
	return p, nil
}

// Update overwrites the caller's profile fields. The profile id and user
// binding are taken from storage, never from the input.
func (uc *ApplicantProfileUsecase) Update(ctx context.Context, userID uuid.UUID, in applicant.Profile) (applicant.Profile, error) {
	current, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return applicant.Profile{}, ErrInternal
	}

	pref := strings.TrimSpace(in.RemoteWorkPreference)
	if pref != "" && !applicant.IsValidRemotePreference(pref) {
		return applicant.Profile{}, ErrInvalidInput
	}

	in.ID = current.ID
	in.UserID = current.UserID
	in.CreatedAt = current.CreatedAt
	in.RemoteWorkPreference = pref
	in.Skills = cleanSkillList(in.Skills)

	updated, err := uc.applicants.UpdateProfile(ctx, in)
	if err != nil {
		return applicant.Profile{}, ErrInternal
	}
	return updated, nil
}

// Dashboard gathers the applicant's profile, identity and application
// activity in one call.
func (uc *ApplicantProfileUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (ApplicantDashboard, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return ApplicantDashboard{}, ErrInternal
	}
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return ApplicantDashboard{}, ErrInternal
	}
	u.PasswordHash = ""

	count, err := uc.applications.CountByApplicant(ctx, userID)
	if err != nil {
		return ApplicantDashboard{}, ErrInternal
	}

	apps, err := uc.applications.ListByApplicant(ctx, userID)
	if err != nil {
		return ApplicantDashboard{}, ErrInternal
	}
	if len(apps) > 5 {
		apps = apps[:5]
	}
	recent := make([]ApplicationWithJob, 0, len(apps))
	for _, a := range apps {
		j, err := uc.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			if errors.Is(err, job.ErrNotFound) {
				continue
			}
			return ApplicantDashboard{}, ErrInternal
		}
		recent = append(recent, ApplicationWithJob{Application: a, Job: j})
	}

	return ApplicantDashboard{
		Profile:          p,
		User:             u,
		ApplicationCount: count,
		Recent:           recent,
	}, nil
}

func (uc *ApplicantProfileUsecase) ListEducation(ctx context.Context, userID uuid.UUID) ([]applicant.Education, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out, err := uc.applicants.ListEducation(ctx, p.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (uc *ApplicantProfileUsecase) AddEducation(ctx context.Context, userID uuid.UUID, e applicant.Education) (applicant.Education, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return applicant.Education{}, ErrInternal
	}
	if err := validateEducation(&e); err != nil {
		return applicant.Education{}, err
	}

	e.ApplicantProfileID = p.ID
	created, err := uc.applicants.CreateEducation(ctx, e)
	if err != nil {
		return applicant.Education{}, ErrInternal
	}
	return created, nil
}

func (uc *ApplicantProfileUsecase) UpdateEducation(ctx context.Context, userID uuid.UUID, e applicant.Education) (applicant.Education, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return applicant.Education{}, ErrInternal
	}
	if err := validateEducation(&e); err != nil {
		return applicant.Education{}, err
	}

	e.ApplicantProfileID = p.ID
	updated, err := uc.applicants.UpdateEducation(ctx, e)
	if err != nil {
		if errors.Is(err, applicant.ErrEducationNotFound) {
			return applicant.Education{}, applicant.ErrEducationNotFound
		}
		return applicant.Education{}, ErrInternal
	}
	return updated, nil
}

func (uc *ApplicantProfileUsecase) DeleteEducation(ctx context.Context, userID, educationID uuid.UUID) error {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return ErrInternal
	}
	if err := uc.applicants.DeleteEducation(ctx, p.ID, educationID); err != nil {
		if errors.Is(err, applicant.ErrEducationNotFound) {
			return applicant.ErrEducationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (uc *ApplicantProfileUsecase) ListExperience(ctx context.Context, userID uuid.UUID) ([]applicant.WorkExperience, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out, err := uc.applicants.ListExperience(ctx, p.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (uc *ApplicantProfileUsecase) AddExperience(ctx context.Context, userID uuid.UUID, w applicant.WorkExperience) (applicant.WorkExperience, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return applicant.WorkExperience{}, ErrInternal
	}
	if err := validateExperience(&w); err != nil {
		return applicant.WorkExperience{}, err
	}

	w.ApplicantProfileID = p.ID
	created, err := uc.applicants.CreateExperience(ctx, w)
	if err != nil {
		return applicant.WorkExperience{}, ErrInternal
	}
	return created, nil
}

func (uc *ApplicantProfileUsecase) UpdateExperience(ctx context.Context, userID uuid.UUID, w applicant.WorkExperience) (applicant.WorkExperience, error) {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return applicant.WorkExperience{}, ErrInternal
	}
	if err := validateExperience(&w); err != nil {
		return applicant.WorkExperience{}, err
	}

	w.ApplicantProfileID = p.ID
	updated, err := uc.applicants.UpdateExperience(ctx, w)
	if err != nil {
		if errors.Is(err, applicant.ErrExperienceNotFound) {
			return applicant.WorkExperience{}, applicant.ErrExperienceNotFound
		}
		return applicant.WorkExperience{}, ErrInternal
	}
	return updated, nil
}

func (uc *ApplicantProfileUsecase) DeleteExperience(ctx context.Context, userID, experienceID uuid.UUID) error {
	p, err := uc.applicants.EnsureProfile(ctx, userID)
	if err != nil {
		return ErrInternal
	}
	if err := uc.applicants.DeleteExperience(ctx, p.ID, experienceID); err != nil {
		if errors.Is(err, applicant.ErrExperienceNotFound) {
			return applicant.ErrExperienceNotFound
		}
		return ErrInternal
	}
	return nil
}

func validateEducation(e *applicant.Education) error {
	e.Institution = strings.TrimSpace(e.Institution)
	e.Degree = strings.TrimSpace(e.Degree)
	if e.Institution == "" || e.Degree == "" {
		return ErrInvalidInput
	}
	if e.StartDate.IsZero() {
		return ErrInvalidInput
	}
	if e.IsCurrent {
		e.EndDate = nil
	} else if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return ErrInvalidInput
	}
	return nil
}

func validateExperience(w *applicant.WorkExperience) error {
	w.Company = strings.TrimSpace(w.Company)
	w.Position = strings.TrimSpace(w.Position)
	if w.Company == "" || w.Position == "" {
		return ErrInvalidInput
	}
	if w.StartDate.IsZero() {
		return ErrInvalidInput
	}
	if w.IsCurrent {
		w.EndDate = nil
	} else if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
		return ErrInvalidInput
	}
	return nil
}
