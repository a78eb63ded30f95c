package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
)

// SearchFilter accumulates the optional job-search restrictions. Zero
// values mean "do not filter"; the base set is always active jobs only.
type SearchFilter struct {
	Keywords         string
	Location         string
	JobTypes         []string
	RemoteTypes      []string
	ExperienceLevels []string
	SalaryMin        *float64
	VisaSponsorship  bool
	Skills           []string

	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListByPoster(ctx context.Context, posterID uuid.UUID) ([]Job, error)

	Search(ctx context.Context, f SearchFilter) ([]Job, error)
	CountSearch(ctx context.Context, f SearchFilter) (int, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Application, error)
	CountByApplicant(ctx context.Context, applicantID uuid.UUID) (int, error)
	CountByJobs(ctx context.Context, posterID uuid.UUID) (int, error)
}
