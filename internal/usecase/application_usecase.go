package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

var (
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrApplicationFinal    = errors.New("application is in a final state")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrApplicationNotOwned = errors.New("application does not belong to caller")
)

type ApplicationUsecase struct {
	jobs         job.Repository
	applications job.ApplicationRepository
}

func NewApplicationUsecase(jobs job.Repository, applications job.ApplicationRepository) *ApplicationUsecase {
	return &ApplicationUsecase{jobs: jobs, applications: applications}
}

// ApplicationWithJob pairs an application with the posting it targets,
// for listings where both sides matter.
type ApplicationWithJob struct {
	Application job.Application
	Job         job.Job
}

// Apply submits an application to an active posting. The unique constraint
// in storage backs up the pre-check, so a concurrent duplicate still maps
// to ErrAlreadyApplied.
func (uc *ApplicationUsecase) Apply(ctx context.Context, applicantID, jobID uuid.UUID, coverLetter string) (job.Application, error) {
	j, err := uc.jobs.GetActiveByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Application{}, job.ErrNotFound
		}
		return job.Application{}, ErrInternal
	}

	applied, err := uc.applications.Exists(ctx, j.ID, applicantID)
	if err != nil {
		return job.Application{}, ErrInternal
	}
	if applied {
		return job.Application{}, ErrAlreadyApplied
	}

	a := job.Application{
		JobID:       j.ID,
		ApplicantID: applicantID,
		CoverLetter: strings.TrimSpace(coverLetter),
		Status:      job.StatusApplied,
	}
	created, err := uc.applications.Create(ctx, a)
	if err != nil {
		if errors.Is(err, job.ErrAlreadyApplied) {
			return job.Application{}, ErrAlreadyApplied
		}
		return job.Application{}, ErrInternal
	}
	return created, nil
}

// ListOwn returns the caller's applications, newest first, each joined
// with its posting.
func (uc *ApplicationUsecase) ListOwn(ctx context.Context, applicantID uuid.UUID) ([]ApplicationWithJob, error) {
	apps, err := uc.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ApplicationWithJob, 0, len(apps))
	for _, a := range apps {
		j, err := uc.jobs.GetByID(ctx, a.JobID)
		if err != nil {
			if errors.Is(err, job.ErrNotFound) {
				continue
			}
			return nil, ErrInternal
		}
		out = append(out, ApplicationWithJob{Application: a, Job: j})
	}
	return out, nil
}

// Withdraw moves the caller's application to withdrawn. Allowed from any
// non-final state only.
func (uc *ApplicationUsecase) Withdraw(ctx context.Context, applicantID, applicationID uuid.UUID) (job.Application, error) {
	a, err := uc.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, job.ErrApplicationNotFound) {
			return job.Application{}, job.ErrApplicationNotFound
		}
		return job.Application{}, ErrInternal
	}
	if a.ApplicantID != applicantID {
		return job.Application{}, ErrApplicationNotOwned
	}
	if !job.CanWithdraw(a.Status) {
		return job.Application{}, ErrApplicationFinal
	}

	updated, err := uc.applications.UpdateStatus(ctx, a.ID, job.StatusWithdrawn)
	if err != nil {
		return job.Application{}, ErrInternal
	}
	return updated, nil
}

// ListForJob returns all applications for one of the recruiter's postings.
func (uc *ApplicationUsecase) ListForJob(ctx context.Context, recruiterID, jobID uuid.UUID) ([]job.Application, error) {
	j, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, job.ErrNotFound
		}
		return nil, ErrInternal
	}
	if j.PostedBy != recruiterID {
		return nil, ErrForbidden
	}

	apps, err := uc.applications.ListByJob(ctx, j.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

// UpdateStatus advances an application along the recruiter-driven status
// graph. The caller must own the posting the application targets.
func (uc *ApplicationUsecase) UpdateStatus(ctx context.Context, recruiterID, applicationID uuid.UUID, status string) (job.Application, error) {
	if !job.IsValidStatus(status) || status == job.StatusWithdrawn {
		return job.Application{}, ErrInvalidInput
	}

	a, err := uc.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, job.ErrApplicationNotFound) {
			return job.Application{}, job.ErrApplicationNotFound
		}
		return job.Application{}, ErrInternal
	}

	j, err := uc.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return job.Application{}, ErrInternal
	}
	if j.PostedBy != recruiterID {
		return job.Application{}, ErrForbidden
	}

	if !job.CanTransition(a.Status, status) {
		if job.IsTerminalStatus(a.Status) {
			return job.Application{}, ErrApplicationFinal
		}
		return job.Application{}, ErrInvalidTransition
	}

	updated, err := uc.applications.UpdateStatus(ctx, a.ID, status)
	if err != nil {
		return job.Application{}, ErrInternal
	}
	return updated, nil
}
