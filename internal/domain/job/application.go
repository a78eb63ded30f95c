package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusApplied   = "applied"
	StatusReview    = "review"
	StatusInterview = "interview"
	StatusOffer     = "offer"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusWithdrawn = "withdrawn"
)

func IsValidStatus(v string) bool {
	switch v {
	case StatusApplied, StatusReview, StatusInterview, StatusOffer,
		StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

func IsTerminalStatus(v string) bool {
	switch v {
	case StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// statusGraph is the enforced transition graph for recruiter-driven status
// edits. Withdrawal is handled separately: the applicant may withdraw from
// any non-terminal state.
var statusGraph = map[string][]string{
	StatusApplied:   {StatusReview, StatusInterview, StatusOffer, StatusRejected},
	StatusReview:    {StatusInterview, StatusOffer, StatusRejected},
	StatusInterview: {StatusOffer, StatusRejected},
	StatusOffer:     {StatusAccepted, StatusRejected},
}

func CanTransition(from, to string) bool {
	for _, next := range statusGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

func CanWithdraw(from string) bool {
	return IsValidStatus(from) && !IsTerminalStatus(from)
}

// Application joins a job and an applicant user. At most one application
// exists per (job, applicant) pair.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	CoverLetter string
	Status      string
	AppliedAt   time.Time
	UpdatedAt   time.Time
}
