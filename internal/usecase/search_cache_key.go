package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"jobboard/internal/domain/job"
)

// jobSearchCacheKey renders a normalized filter as a deterministic redis
// key under the jobs:search: prefix. Filters must be normalized first so
// equivalent queries share one entry.
func jobSearchCacheKey(f job.SearchFilter) string {
	var b strings.Builder
	b.WriteString("jobs:search:")

	writeField(&b, "kw", f.Keywords)
	writeField(&b, "loc", f.Location)
	writeField(&b, "jt", strings.Join(f.JobTypes, ","))
	writeField(&b, "rt", strings.Join(f.RemoteTypes, ","))
	writeField(&b, "xl", strings.Join(f.ExperienceLevels, ","))
	if f.SalaryMin != nil {
		writeField(&b, "smin", strconv.FormatFloat(*f.SalaryMin, 'f', -1, 64))
	}
	if f.VisaSponsorship {
		writeField(&b, "visa", "1")
	}
	writeField(&b, "sk", strings.Join(f.Skills, ","))
	b.WriteString(fmt.Sprintf("|p=%d:%d", f.Limit, f.Offset))

	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("|")
	b.WriteString(name)
	b.WriteString("=")
	b.WriteString(strings.ToLower(value))
}
