package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
)

type searchingJobRepo struct {
	mockJobRepo
	gotFilter   job.SearchFilter
	searchCalls int
	results     []job.Job
	total       int
}

func (m *searchingJobRepo) Search(_ context.Context, f job.SearchFilter) ([]job.Job, error) {
	m.gotFilter = f
	m.searchCalls++
	return m.results, nil
}

func (m *searchingJobRepo) CountSearch(context.Context, job.SearchFilter) (int, error) {
	return m.total, nil
}

type mockSearchCache struct {
	hit  *JobSearchResult
	sets int

	gets         int
	hitAfterGets int // when set, GetJSON misses until this many calls passed
	lockAttempts int
	lockDenied   bool
}

func (m *mockSearchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	if m.hit == nil {
		return false, nil
	}
	if m.hitAfterGets > 0 && m.gets <= m.hitAfterGets {
		return false, nil
	}
	if res, ok := out.(*JobSearchResult); ok {
		*res = *m.hit
		return true, nil
	}
	return false, nil
}

func (m *mockSearchCache) SetJSON(context.Context, string, any, time.Duration) error {
	m.sets++
	return nil
}

func (m *mockSearchCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	m.lockAttempts++
	return !m.lockDenied, nil
}

func (m *mockSearchCache) InvalidateJobSearch(context.Context) error { return nil }

func TestJobSearchUsecase_NormalizesFilters(t *testing.T) {
	repo := &searchingJobRepo{}
	uc := NewJobSearchUsecase(repo, &mockApplicationRepo{}, nil, nil)

	_, err := uc.Search(context.Background(), JobSearchParams{
		Keywords:    "  backend  ",
		JobTypes:    []string{job.TypeFullTime, "bogus", job.TypeFullTime, ""},
		RemoteTypes: []string{"not-a-type"},
		Skills:      []string{" Go ", "", "Go"},
		Page:        3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	f := repo.gotFilter
	if f.Keywords != "backend" {
		t.Fatalf("keywords = %q", f.Keywords)
	}
	if len(f.JobTypes) != 1 || f.JobTypes[0] != job.TypeFullTime {
		t.Fatalf("job types = %v, want deduped valid values", f.JobTypes)
	}
	if f.RemoteTypes != nil {
		t.Fatalf("remote types = %v, want nil after dropping unknown", f.RemoteTypes)
	}
	if len(f.Skills) != 1 || f.Skills[0] != "Go" {
		t.Fatalf("skills = %v", f.Skills)
	}
	if f.Limit != jobSearchPageSize || f.Offset != 2*jobSearchPageSize {
		t.Fatalf("limit/offset = %d/%d", f.Limit, f.Offset)
	}
}

func TestJobSearchUsecase_PageDefaultsToOne(t *testing.T) {
	repo := &searchingJobRepo{total: 25}
	uc := NewJobSearchUsecase(repo, &mockApplicationRepo{}, nil, nil)

	res, err := uc.Search(context.Background(), JobSearchParams{Page: -2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Page != 1 || repo.gotFilter.Offset != 0 {
		t.Fatalf("page = %d, offset = %d", res.Page, repo.gotFilter.Offset)
	}
	if res.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3 for 25 results", res.TotalPages)
	}
}

func TestJobSearchUsecase_CacheHitSkipsRepository(t *testing.T) {
	repo := &searchingJobRepo{}
	cached := JobSearchResult{Total: 7, Page: 1, PageSize: jobSearchPageSize, TotalPages: 1}
	uc := NewJobSearchUsecase(repo, &mockApplicationRepo{}, &mockSearchCache{hit: &cached}, nil)

	res, err := uc.Search(context.Background(), JobSearchParams{Keywords: "go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 7 {
		t.Fatalf("total = %d, want cached 7", res.Total)
	}
	if repo.searchCalls != 0 {
		t.Fatalf("repository hit despite cached result")
	}
}

func TestJobSearchUsecase_CacheMissStoresResult(t *testing.T) {
	repo := &searchingJobRepo{total: 1}
	mc := &mockSearchCache{}
	uc := NewJobSearchUsecase(repo, &mockApplicationRepo{}, mc, nil)

	if _, err := uc.Search(context.Background(), JobSearchParams{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if mc.sets != 1 {
		t.Fatalf("expected one cache set, got %d", mc.sets)
	}
}

func TestJobSearchUsecase_CacheMissTakesLock(t *testing.T) {
	repo := &searchingJobRepo{}
	mc := &mockSearchCache{}
	uc := NewJobSearchUsecase(repo, &mockApplicationRepo{}, mc, nil)

	if _, err := uc.Search(context.Background(), JobSearchParams{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if mc.lockAttempts != 1 {
		t.Fatalf("expected one lock attempt on miss, got %d", mc.lockAttempts)
	}
	if mc.sets != 1 {
		t.Fatalf("lock holder must write the cache, sets = %d", mc.sets)
	}
}

func TestJobSearchUsecase_LockFollowerReusesLeaderResult(t *testing.T) {
	repo := &searchingJobRepo{}
	cached := JobSearchResult{Total: 4, Page: 1, PageSize: jobSearchPageSize, TotalPages: 1}
	mc := &mockSearchCache{hit: &cached, hitAfterGets: 1, lockDenied: true}
	uc := NewJobSearchUsecase(repo, &mockApplicationRepo{}, mc, nil)

	res, err := uc.Search(context.Background(), JobSearchParams{Keywords: "go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 4 {
		t.Fatalf("total = %d, want the leader's cached 4", res.Total)
	}
	if repo.searchCalls != 0 {
		t.Fatalf("follower hit the repository despite a landed result")
	}
	if mc.sets != 0 {
		t.Fatalf("follower must not write the cache, sets = %d", mc.sets)
	}
}

func TestJobSearchUsecase_LockFollowerRecomputesWithoutWriting(t *testing.T) {
	repo := &searchingJobRepo{total: 1}
	mc := &mockSearchCache{lockDenied: true}
	uc := NewJobSearchUsecase(repo, &mockApplicationRepo{}, mc, nil)

	res, err := uc.Search(context.Background(), JobSearchParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Total != 1 || repo.searchCalls != 1 {
		t.Fatalf("follower with no landed result must recompute, total=%d calls=%d", res.Total, repo.searchCalls)
	}
	if mc.sets != 0 {
		t.Fatalf("follower must not write the cache, sets = %d", mc.sets)
	}
}

func TestJobSearchUsecase_GetActive_HasApplied(t *testing.T) {
	poster := uuid.New()
	viewer := uuid.New()
	j := activeJob(poster)

	jobs := &mockJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}}
	apps := &mockApplicationRepo{}
	if _, err := apps.Create(context.Background(), job.Application{JobID: j.ID, ApplicantID: viewer, Status: job.StatusApplied}); err != nil {
		t.Fatalf("seed application: %v", err)
	}

	uc := NewJobSearchUsecase(jobs, apps, nil, nil)

	detail, err := uc.GetActive(context.Background(), j.ID, &viewer)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !detail.HasApplied {
		t.Fatalf("expected HasApplied=true")
	}

	detail, err = uc.GetActive(context.Background(), j.ID, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if detail.HasApplied {
		t.Fatalf("anonymous viewer must not get HasApplied")
	}
}

func TestJobSearchCacheKey_Deterministic(t *testing.T) {
	min := 90000.0
	f := job.SearchFilter{
		Keywords:  "Backend",
		JobTypes:  []string{job.TypeContract, job.TypeFullTime},
		SalaryMin: &min,
		Skills:    []string{"Go", "SQL"},
		Limit:     10,
		Offset:    0,
	}
	k1 := jobSearchCacheKey(f)
	k2 := jobSearchCacheKey(f)
	if k1 != k2 {
		t.Fatalf("cache key not deterministic: %q vs %q", k1, k2)
	}
	if k1 == jobSearchCacheKey(job.SearchFilter{Limit: 10}) {
		t.Fatalf("distinct filters map to one key")
	}
}
