package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

type invalidatingCache struct {
	mockSearchCache
	invalidations int
}

func (m *invalidatingCache) InvalidateJobSearch(context.Context) error {
	m.invalidations++
	return nil
}

type mockNotifier struct {
	events []uuid.UUID
}

func (m *mockNotifier) NotifyJobPosted(jobID uuid.UUID, title, company string) {
	m.events = append(m.events, jobID)
}

func validJobInput() job.Job {
	return job.Job{
		Title:           "Backend Engineer",
		Company:         "Acme",
		Description:     "Build services",
		JobType:         job.TypeFullTime,
		RemoteType:      job.RemoteRemote,
		ExperienceLevel: job.ExperienceSenior,
	}
}

func TestJobPostingUsecase_Create(t *testing.T) {
	repo := &mockJobRepo{}
	mc := &invalidatingCache{}
	notifier := &mockNotifier{}
	uc := NewJobPostingUsecase(repo, mc, notifier, nil)

	poster := uuid.New()
	created, err := uc.Create(context.Background(), poster, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.PostedBy != poster {
		t.Fatalf("posting not bound to poster")
	}
	if !created.IsActive {
		t.Fatalf("new posting must be active")
	}
	if mc.invalidations != 1 {
		t.Fatalf("expected one cache invalidation, got %d", mc.invalidations)
	}
	if len(notifier.events) != 1 || notifier.events[0] != created.ID {
		t.Fatalf("job-posted event not sent: %v", notifier.events)
	}
}

func TestJobPostingUsecase_Create_Invalid(t *testing.T) {
	uc := NewJobPostingUsecase(&mockJobRepo{}, nil, nil, nil)

	cases := []func(*job.Job){
		func(j *job.Job) { j.Title = "  " },
		func(j *job.Job) { j.Company = "" },
		func(j *job.Job) { j.Description = "" },
		func(j *job.Job) { j.JobType = "gig" },
		func(j *job.Job) { j.RemoteType = "mars" },
		func(j *job.Job) { j.ExperienceLevel = "god" },
		func(j *job.Job) { j.SalaryPeriod = "weekly" },
		func(j *job.Job) {
			lo, hi := 100.0, 50.0
			j.SalaryMin, j.SalaryMax = &lo, &hi
		},
	}
	for i, mutate := range cases {
		j := validJobInput()
		mutate(&j)
		if _, err := uc.Create(context.Background(), uuid.New(), j); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestJobPostingUsecase_Update_OwnerOnly(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobPostingUsecase(repo, nil, nil, nil)

	poster := uuid.New()
	created, err := uc.Create(context.Background(), poster, validJobInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	edit := validJobInput()
	edit.Title = "Staff Engineer"

	if _, err := uc.Update(context.Background(), uuid.New(), created.ID, edit); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	updated, err := uc.Update(context.Background(), poster, created.ID, edit)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Staff Engineer" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.PostedBy != poster {
		t.Fatalf("owner binding changed on update")
	}
}

func TestJobPostingUsecase_Update_NotFound(t *testing.T) {
	uc := NewJobPostingUsecase(&mockJobRepo{}, nil, nil, nil)

	if _, err := uc.Update(context.Background(), uuid.New(), uuid.New(), validJobInput()); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobPostingUsecase_SkillListCleaned(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobPostingUsecase(repo, nil, nil, nil)

	in := validJobInput()
	in.RequiredSkills = []string{" Go ", "", "go", "SQL"}

	created, err := uc.Create(context.Background(), uuid.New(), in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(created.RequiredSkills) != 2 || created.RequiredSkills[0] != "Go" || created.RequiredSkills[1] != "SQL" {
		t.Fatalf("skills = %v, want deduped ordered [Go SQL]", created.RequiredSkills)
	}
}
