package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TypeFullTime   = "full_time"
	TypePartTime   = "part_time"
	TypeContract   = "contract"
	TypeInternship = "internship"
	TypeTemporary  = "temporary"
)

const (
	RemoteRemote = "remote"
	RemoteHybrid = "hybrid"
	RemoteOnsite = "onsite"
)

const (
	ExperienceEntry     = "entry"
	ExperienceMid       = "mid"
	ExperienceSenior    = "senior"
	ExperienceExecutive = "executive"
)

const (
	SalaryHourly  = "hourly"
	SalaryMonthly = "monthly"
	SalaryYearly  = "yearly"
)

func IsValidType(v string) bool {
	switch v {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship, TypeTemporary:
		return true
	}
	return false
}

func IsValidRemoteType(v string) bool {
	switch v {
	case RemoteRemote, RemoteHybrid, RemoteOnsite:
		return true
	}
	return false
}

func IsValidExperienceLevel(v string) bool {
	switch v {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

func IsValidSalaryPeriod(v string) bool {
	switch v {
	case SalaryHourly, SalaryMonthly, SalaryYearly:
		return true
	}
	return false
}

// Job is a posting owned by the recruiter user in PostedBy. Skill lists are
// ordered lists in the domain; the comma-text serialization is confined to
// the repository layer.
type Job struct {
	ID           uuid.UUID
	PostedBy     uuid.UUID
	Title        string
	Company      string
	Description  string
	Requirements string

	JobType         string
	RemoteType      string
	ExperienceLevel string

	SalaryMin      *float64
	SalaryMax      *float64
	SalaryCurrency string
	SalaryPeriod   string

	City       string
	State      string
	Country    string
	PostalCode string

	RequiredSkills  []string
	PreferredSkills []string

	VisaSponsorship bool
	Benefits        string

	IsActive            bool
	ApplicationDeadline *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (j Job) LocationDisplay() string {
	return fmt.Sprintf("%s, %s, %s", j.City, j.State, j.Country)
}

func (j Job) SalaryDisplay() string {
	period := salaryPeriodDisplay(j.SalaryPeriod)
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("$%s - $%s %s", formatAmount(*j.SalaryMin), formatAmount(*j.SalaryMax), period)
	case j.SalaryMin != nil:
		return fmt.Sprintf("$%s+ %s", formatAmount(*j.SalaryMin), period)
	}
	return "Salary not specified"
}

func salaryPeriodDisplay(period string) string {
	switch period {
	case SalaryHourly:
		return "Per Hour"
	case SalaryMonthly:
		return "Per Month"
	default:
		return "Per Year"
	}
}

// formatAmount renders a salary amount with thousands separators and no
// decimals, e.g. 120000 -> "120,000".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
