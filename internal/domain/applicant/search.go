package applicant

const (
	EducationHighSchool = "high_school"
	EducationAssociate  = "associate"
	EducationBachelor   = "bachelor"
	EducationMaster     = "master"
	EducationPhD        = "phd"
)

// SearchFilter accumulates the optional candidate-search restrictions over
// public profiles. Boolean filters apply only when explicitly set; absence
// means "do not filter". ExperienceYears is carried but not applied. The
// matching logic for it is not supported yet and callers surface that
// instead of silently matching everything.
type SearchFilter struct {
	Keywords         string
	Skills           []string
	Location         string
	RemotePreference string

	WillingToRelocate bool
	SeekingJobs       bool

	EducationLevel  string
	ExperienceYears string

	Limit  int
	Offset int
}
