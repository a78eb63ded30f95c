package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type parsedSearchQuery struct {
	salaryMin *float64
	skills    []string
	visa      bool
	page      int
}

// parseSearchQuery runs the raw query string through the same helpers the
// search handler uses.
func parseSearchQuery(t *testing.T, target string) parsedSearchQuery {
	t.Helper()

	var got parsedSearchQuery
	app := fiber.New()
	app.Get("/jobs", func(c fiber.Ctx) error {
		got = parsedSearchQuery{
			salaryMin: parseQueryFloatLenient(c, "salary_min"),
			skills:    queryMulti(c, "skills"),
			visa:      parseQueryFlag(c, "visa_sponsorship"),
			page:      parseQueryIntLenient(c, "page", 1),
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	return got
}

func TestSearchQuery_SalaryMinLenient(t *testing.T) {
	cases := []struct {
		query string
		want  *float64
	}{
		{"/jobs?salary_min=abc", nil},
		{"/jobs?salary_min=-100", nil},
		{"/jobs?salary_min=", nil},
		{"/jobs", nil},
		{"/jobs?salary_min=90000", f(90000)},
	}
	for _, tc := range cases {
		got := parseSearchQuery(t, tc.query).salaryMin
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%s: salary_min = %v, want dropped", tc.query, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("%s: salary_min = %v, want %v", tc.query, got, *tc.want)
		}
	}
}

func TestSearchQuery_MultiValueMerging(t *testing.T) {
	got := parseSearchQuery(t, "/jobs?skills=go,sql&skills=python&skills=%20")
	if len(got.skills) != 3 || got.skills[0] != "go" || got.skills[1] != "sql" || got.skills[2] != "python" {
		t.Fatalf("skills = %v, want repeated and comma-split values merged", got.skills)
	}

	if s := parseSearchQuery(t, "/jobs").skills; s != nil {
		t.Fatalf("skills = %v, want nil when absent", s)
	}
}

func TestSearchQuery_FlagAndPage(t *testing.T) {
	if !parseSearchQuery(t, "/jobs?visa_sponsorship=true").visa {
		t.Fatalf("visa_sponsorship=true must filter")
	}
	if parseSearchQuery(t, "/jobs?visa_sponsorship=0").visa {
		t.Fatalf("visa_sponsorship=0 must not filter")
	}
	if parseSearchQuery(t, "/jobs").visa {
		t.Fatalf("absent visa_sponsorship must not filter")
	}

	if p := parseSearchQuery(t, "/jobs?page=x").page; p != 1 {
		t.Fatalf("malformed page = %d, want default 1", p)
	}
	if p := parseSearchQuery(t, "/jobs?page=0").page; p != 1 {
		t.Fatalf("page=0 = %d, want default 1", p)
	}
	if p := parseSearchQuery(t, "/jobs?page=3").page; p != 3 {
		t.Fatalf("page = %d, want 3", p)
	}
}

func f(v float64) *float64 { return &v }
