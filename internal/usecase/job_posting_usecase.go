package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

// JobPostedNotifier fans a new posting out to live listeners.
type JobPostedNotifier interface {
	NotifyJobPosted(jobID uuid.UUID, title, company string)
}

type JobPostingUsecase struct {
	jobs     job.Repository
	cache    SearchCache
	notifier JobPostedNotifier
	logger   *log.Logger
}

func NewJobPostingUsecase(jobs job.Repository, cache SearchCache, notifier JobPostedNotifier, logger *log.Logger) *JobPostingUsecase {
	return &JobPostingUsecase{jobs: jobs, cache: cache, notifier: notifier, logger: logger}
}

// Create stores a new posting owned by posterID, invalidates cached search
// pages and announces it over the websocket feed.
func (uc *JobPostingUsecase) Create(ctx context.Context, posterID uuid.UUID, j job.Job) (job.Job, error) {
	if err := validateJob(&j); err != nil {
		return job.Job{}, err
	}

	j.ID = uuid.Nil
	j.PostedBy = posterID
	j.IsActive = true

	created, err := uc.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	uc.invalidateSearch(ctx)
	if uc.notifier != nil {
		uc.notifier.NotifyJobPosted(created.ID, created.Title, created.Company)
	}
	return created, nil
}

// Update edits a posting. Only the recruiter who posted it may edit.
func (uc *JobPostingUsecase) Update(ctx context.Context, posterID, jobID uuid.UUID, j job.Job) (job.Job, error) {
	existing, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if existing.PostedBy != posterID {
		return job.Job{}, ErrForbidden
	}

	if err := validateJob(&j); err != nil {
		return job.Job{}, err
	}

	j.ID = existing.ID
	j.PostedBy = existing.PostedBy
	j.CreatedAt = existing.CreatedAt

	updated, err := uc.jobs.Update(ctx, j)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	uc.invalidateSearch(ctx)
	return updated, nil
}

// GetOwn fetches one posting for its owner, active or not.
func (uc *JobPostingUsecase) GetOwn(ctx context.Context, posterID, jobID uuid.UUID) (job.Job, error) {
	j, err := uc.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.PostedBy != posterID {
		return job.Job{}, ErrForbidden
	}
	return j, nil
}

func (uc *JobPostingUsecase) ListOwn(ctx context.Context, posterID uuid.UUID) ([]job.Job, error) {
	jobs, err := uc.jobs.ListByPoster(ctx, posterID)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (uc *JobPostingUsecase) invalidateSearch(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateJobSearch(ctx); err != nil && uc.logger != nil {
		uc.logger.Printf("[JobPosting] search cache invalidation failed: %v", err)
	}
}

func validateJob(j *job.Job) error {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	j.Description = strings.TrimSpace(j.Description)

	if j.Title == "" || j.Company == "" || j.Description == "" {
		return ErrInvalidInput
	}
	if !job.IsValidType(j.JobType) {
		return ErrInvalidInput
	}
	if !job.IsValidRemoteType(j.RemoteType) {
		return ErrInvalidInput
	}
	if !job.IsValidExperienceLevel(j.ExperienceLevel) {
		return ErrInvalidInput
	}
	if j.SalaryPeriod != "" && !job.IsValidSalaryPeriod(j.SalaryPeriod) {
		return ErrInvalidInput
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return ErrInvalidInput
	}

	j.RequiredSkills = cleanSkillList(j.RequiredSkills)
	j.PreferredSkills = cleanSkillList(j.PreferredSkills)
	return nil
}

// cleanSkillList trims and dedupes while keeping the author's ordering.
func cleanSkillList(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
