package repository

import (
	"strings"
	"testing"

	"jobboard/internal/domain/applicant"
)

func TestBuildCandidateSearchWhere_BaseOnly(t *testing.T) {
	b := buildCandidateSearchWhere(applicant.SearchFilter{})

	if got := b.where(); got != " WHERE ap.is_public = true" {
		t.Fatalf("where() = %q", got)
	}
	if len(b.args) != 0 {
		t.Fatalf("expected no args, got %v", b.args)
	}
}

func TestBuildCandidateSearchWhere_Keywords(t *testing.T) {
	b := buildCandidateSearchWhere(applicant.SearchFilter{Keywords: "jane"})

	w := b.where()
	for _, col := range []string{
		"u.first_name ILIKE $1",
		"u.last_name ILIKE $1",
		"split_part(u.email, '@', 1) ILIKE $1",
		"ap.headline ILIKE $1",
		"ap.summary ILIKE $1",
	} {
		if !strings.Contains(w, col) {
			t.Fatalf("keywords clause missing %q: %q", col, w)
		}
	}
	if len(b.args) != 1 || b.args[0] != "%jane%" {
		t.Fatalf("unexpected args: %v", b.args)
	}
}

func TestBuildCandidateSearchWhere_EducationLevels(t *testing.T) {
	cases := map[string]string{
		applicant.EducationHighSchool: "%high school%",
		applicant.EducationAssociate:  "%associate%",
		applicant.EducationBachelor:   "%bachelor%",
		applicant.EducationMaster:     "%master%",
		applicant.EducationPhD:        "%phd%",
	}
	for level, pattern := range cases {
		b := buildCandidateSearchWhere(applicant.SearchFilter{EducationLevel: level})
		if !strings.Contains(b.where(), "EXISTS (SELECT 1 FROM educations e") {
			t.Errorf("level %q: EXISTS clause missing: %q", level, b.where())
			continue
		}
		if len(b.args) != 1 || b.args[0] != pattern {
			t.Errorf("level %q: args = %v, want [%q]", level, b.args, pattern)
		}
	}
}

func TestBuildCandidateSearchWhere_UnknownEducationLevelIgnored(t *testing.T) {
	b := buildCandidateSearchWhere(applicant.SearchFilter{EducationLevel: "doctorate"})
	if strings.Contains(b.where(), "EXISTS") {
		t.Fatalf("unknown education level must not filter: %q", b.where())
	}
}

func TestBuildCandidateSearchWhere_ExperienceYearsNotApplied(t *testing.T) {
	b := buildCandidateSearchWhere(applicant.SearchFilter{ExperienceYears: "5"})
	if got := b.where(); got != " WHERE ap.is_public = true" {
		t.Fatalf("experience_years must not change the predicate: %q", got)
	}
}

func TestBuildCandidateSearchWhere_BoolFiltersOnlyWhenTrue(t *testing.T) {
	b := buildCandidateSearchWhere(applicant.SearchFilter{WillingToRelocate: true, SeekingJobs: true})
	w := b.where()
	if !strings.Contains(w, "ap.willing_to_relocate = true") || !strings.Contains(w, "ap.is_seeking_jobs = true") {
		t.Fatalf("bool filters missing: %q", w)
	}

	b = buildCandidateSearchWhere(applicant.SearchFilter{})
	w = b.where()
	if strings.Contains(w, "willing_to_relocate") || strings.Contains(w, "is_seeking_jobs") {
		t.Fatalf("bool filters must be absent when false: %q", w)
	}
}

func TestBuildCandidateSearchWhere_SkillsAreANDed(t *testing.T) {
	b := buildCandidateSearchWhere(applicant.SearchFilter{Skills: []string{"Go", "Python"}})
	w := b.where()
	if !strings.Contains(w, "ap.skills ILIKE $1") || !strings.Contains(w, "ap.skills ILIKE $2") {
		t.Fatalf("per-skill clauses missing: %q", w)
	}
	if len(b.args) != 2 {
		t.Fatalf("expected 2 args, got %v", b.args)
	}
}
