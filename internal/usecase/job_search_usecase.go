package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

const (
	jobSearchPageSize = 10

	jobSearchLockTTL  = 5 * time.Second
	jobSearchLockWait = 100 * time.Millisecond
)

// SearchCache is the slice of the redis cache the search usecases need.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	InvalidateJobSearch(ctx context.Context) error
}

// JobSearchParams carries the raw, already-parsed search inputs. Handlers
// drop malformed values before they get here; empty fields mean no filter.
type JobSearchParams struct {
	Keywords         string
	Location         string
	JobTypes         []string
	RemoteTypes      []string
	ExperienceLevels []string
	SalaryMin        *float64
	VisaSponsorship  bool
	Skills           []string

	Page int
}

type JobSearchResult struct {
	Jobs       []job.Job `json:"jobs"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

type JobSearchUsecase struct {
	jobs         job.Repository
	applications job.ApplicationRepository
	cache        SearchCache
	logger       *log.Logger
}

func NewJobSearchUsecase(jobs job.Repository, applications job.ApplicationRepository, cache SearchCache, logger *log.Logger) *JobSearchUsecase {
	return &JobSearchUsecase{jobs: jobs, applications: applications, cache: cache, logger: logger}
}

func (uc *JobSearchUsecase) Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error) {
	f := uc.normalize(params)

	key := jobSearchCacheKey(f)
	if uc.cache != nil {
		var cached JobSearchResult
		if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	// On a miss, a short SETNX lock elects one request per key to
	// recompute. Followers wait a beat for the leader's result; if it has
	// not landed they recompute too but leave the cache write to the
	// leader, so a burst of identical searches stays bounded.
	holdsLock := uc.cache == nil
	if uc.cache != nil {
		ok, err := uc.cache.SetIfNotExists(ctx, "jobs:search:lock:"+key, "1", jobSearchLockTTL)
		holdsLock = err == nil && ok
		if err == nil && !ok {
			select {
			case <-ctx.Done():
			case <-time.After(jobSearchLockWait):
			}
			var cached JobSearchResult
			if hit, err := uc.cache.GetJSON(ctx, key, &cached); err == nil && hit {
				return cached, nil
			}
		}
	}

	jobs, err := uc.jobs.Search(ctx, f)
	if err != nil {
		return JobSearchResult{}, ErrInternal
	}
	total, err := uc.jobs.CountSearch(ctx, f)
	if err != nil {
		return JobSearchResult{}, ErrInternal
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	result := JobSearchResult{
		Jobs:       jobs,
		Total:      total,
		Page:       page,
		PageSize:   jobSearchPageSize,
		TotalPages: (total + jobSearchPageSize - 1) / jobSearchPageSize,
	}

	if uc.cache != nil && holdsLock {
		if err := uc.cache.SetJSON(ctx, key, result, 0); err != nil && uc.logger != nil {
			uc.logger.Printf("[JobSearch] cache set failed key=%s err=%v", key, err)
		}
	}
	return result, nil
}

// JobDetail is a posting plus the viewer-dependent application flag.
type JobDetail struct {
	Job        job.Job
	HasApplied bool
}

// GetActive returns an active posting by id. When viewerID belongs to an
// applicant, HasApplied reflects whether that user already applied.
func (uc *JobSearchUsecase) GetActive(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (JobDetail, error) {
	j, err := uc.jobs.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return JobDetail{}, job.ErrNotFound
		}
		return JobDetail{}, ErrInternal
	}

	detail := JobDetail{Job: j}
	if viewerID != nil {
		applied, err := uc.applications.Exists(ctx, j.ID, *viewerID)
		if err != nil {
			return JobDetail{}, ErrInternal
		}
		detail.HasApplied = applied
	}
	return detail, nil
}

func (uc *JobSearchUsecase) normalize(params JobSearchParams) job.SearchFilter {
	page := params.Page
	if page < 1 {
		page = 1
	}

	return job.SearchFilter{
		Keywords:         strings.TrimSpace(params.Keywords),
		Location:         strings.TrimSpace(params.Location),
		JobTypes:         cleanValues(params.JobTypes, job.IsValidType),
		RemoteTypes:      cleanValues(params.RemoteTypes, job.IsValidRemoteType),
		ExperienceLevels: cleanValues(params.ExperienceLevels, job.IsValidExperienceLevel),
		SalaryMin:        params.SalaryMin,
		VisaSponsorship:  params.VisaSponsorship,
		Skills:           cleanValues(params.Skills, nil),

		Limit:  jobSearchPageSize,
		Offset: (page - 1) * jobSearchPageSize,
	}
}

// cleanValues trims, drops empties and unknown values, dedupes and sorts.
// Sorting keeps cache keys stable across parameter orderings.
func cleanValues(values []string, valid func(string) bool) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if valid != nil && !valid(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
