package repository

import (
	"strings"
	"testing"

	"jobboard/internal/domain/job"
)

func TestBuildJobSearchWhere_BaseOnly(t *testing.T) {
	b := buildJobSearchWhere(job.SearchFilter{})

	if got := b.where(); got != " WHERE is_active = true" {
		t.Fatalf("where() = %q", got)
	}
	if len(b.args) != 0 {
		t.Fatalf("expected no args, got %v", b.args)
	}
}

func TestBuildJobSearchWhere_Keywords(t *testing.T) {
	b := buildJobSearchWhere(job.SearchFilter{Keywords: "backend"})

	w := b.where()
	if !strings.Contains(w, "title ILIKE $1") ||
		!strings.Contains(w, "company ILIKE $1") ||
		!strings.Contains(w, "description ILIKE $1") ||
		!strings.Contains(w, "required_skills ILIKE $1") {
		t.Fatalf("keywords clause missing columns: %q", w)
	}
	if len(b.args) != 1 || b.args[0] != "%backend%" {
		t.Fatalf("unexpected args: %v", b.args)
	}
}

func TestBuildJobSearchWhere_SkillsAreANDed(t *testing.T) {
	b := buildJobSearchWhere(job.SearchFilter{Skills: []string{"Go", "SQL"}})

	w := b.where()
	if got := strings.Count(w, " AND "); got != 2 {
		t.Fatalf("expected 2 ANDs (base + per-skill), got %d in %q", got, w)
	}
	if len(b.args) != 2 || b.args[0] != "%Go%" || b.args[1] != "%SQL%" {
		t.Fatalf("unexpected args: %v", b.args)
	}
	if !strings.Contains(w, "(required_skills ILIKE $1 OR preferred_skills ILIKE $1)") {
		t.Fatalf("per-skill OR group missing: %q", w)
	}
}

func TestBuildJobSearchWhere_MultiValueFilters(t *testing.T) {
	b := buildJobSearchWhere(job.SearchFilter{
		JobTypes:         []string{job.TypeFullTime, job.TypeContract},
		RemoteTypes:      []string{job.RemoteRemote},
		ExperienceLevels: []string{job.ExperienceSenior, job.ExperienceMid},
	})

	w := b.where()
	if !strings.Contains(w, "job_type = ANY($1)") {
		t.Fatalf("job_type clause missing: %q", w)
	}
	if !strings.Contains(w, "remote_type = ANY($2)") {
		t.Fatalf("remote_type clause missing: %q", w)
	}
	if !strings.Contains(w, "experience_level = ANY($3)") {
		t.Fatalf("experience_level clause missing: %q", w)
	}
	if len(b.args) != 3 {
		t.Fatalf("expected 3 args, got %v", b.args)
	}
}

func TestBuildJobSearchWhere_SalaryAndVisa(t *testing.T) {
	min := 90000.0
	b := buildJobSearchWhere(job.SearchFilter{SalaryMin: &min, VisaSponsorship: true})

	w := b.where()
	if !strings.Contains(w, "salary_min >= $1") {
		t.Fatalf("salary clause missing: %q", w)
	}
	if !strings.Contains(w, "visa_sponsorship = true") {
		t.Fatalf("visa clause missing: %q", w)
	}
	if len(b.args) != 1 || b.args[0] != min {
		t.Fatalf("unexpected args: %v", b.args)
	}
}

func TestBuildJobSearchWhere_VisaOffIsNoFilter(t *testing.T) {
	b := buildJobSearchWhere(job.SearchFilter{VisaSponsorship: false})
	if strings.Contains(b.where(), "visa_sponsorship") {
		t.Fatalf("visa clause should be absent: %q", b.where())
	}
}

func TestBuildJobSearchWhere_BlankSkillsSkipped(t *testing.T) {
	b := buildJobSearchWhere(job.SearchFilter{Skills: []string{" ", ""}})
	if len(b.args) != 0 {
		t.Fatalf("blank skills must not bind args: %v", b.args)
	}
}
