package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recruiter"
	"jobboard/internal/domain/user"
)

// RecruiterDashboard is the recruiter landing-page summary.
type RecruiterDashboard struct {
	Profile          recruiter.Profile
	User             user.User
	JobCount         int
	ActiveJobCount   int
	ApplicationCount int
	RecentJobs       []job.Job
}

type RecruiterProfileUsecase struct {
	recruiters   recruiter.Repository
	users        user.Repository
	jobs         job.Repository
	applications job.ApplicationRepository
}

func NewRecruiterProfileUsecase(recruiters recruiter.Repository, users user.Repository, jobs job.Repository, applications job.ApplicationRepository) *RecruiterProfileUsecase {
	return &RecruiterProfileUsecase{recruiters: recruiters, users: users, jobs: jobs, applications: applications}
}

func (uc *RecruiterProfileUsecase) GetOrCreate(ctx context.Context, userID uuid.UUID) (recruiter.Profile, error) {
	p, err := uc.recruiters.EnsureProfile(ctx, userID)
	if err != nil {
		return recruiter.Profile{}, ErrInternal
	}
	return p, nil
}

func (uc *RecruiterProfileUsecase) Update(ctx context.Context, userID uuid.UUID, in recruiter.Profile) (recruiter.Profile, error) {
	current, err := uc.recruiters.EnsureProfile(ctx, userID)
	if err != nil {
		return recruiter.Profile{}, ErrInternal
	}

	size := strings.TrimSpace(in.CompanySize)
	if size != "" && !recruiter.IsValidCompanySize(size) {
		return recruiter.Profile{}, ErrInvalidInput
	}

	in.ID = current.ID
	in.UserID = current.UserID
	in.CreatedAt = current.CreatedAt
	in.CompanySize = size
	in.CompanyName = strings.TrimSpace(in.CompanyName)

	updated, err := uc.recruiters.UpdateProfile(ctx, in)
	if err != nil {
		return recruiter.Profile{}, ErrInternal
	}
	return updated, nil
}

// Dashboard gathers the recruiter's profile, posting counts and incoming
// application volume.
func (uc *RecruiterProfileUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (RecruiterDashboard, error) {
	p, err := uc.recruiters.EnsureProfile(ctx, userID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}
	u.PasswordHash = ""

	jobs, err := uc.jobs.ListByPoster(ctx, userID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}
	active := 0
	for _, j := range jobs {
		if j.IsActive {
			active++
		}
	}

	appCount, err := uc.applications.CountByJobs(ctx, userID)
	if err != nil {
		return RecruiterDashboard{}, ErrInternal
	}

	recent := jobs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return RecruiterDashboard{
		Profile:          p,
		User:             u,
		JobCount:         len(jobs),
		ActiveJobCount:   active,
		ApplicationCount: appCount,
		RecentJobs:       recent,
	}, nil
}
