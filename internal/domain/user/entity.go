package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

func IsValidRole(role string) bool {
	return role == RoleApplicant || role == RoleRecruiter
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Profile is the role tag attached one-to-one to a user account. The role
// is immutable after creation; gatekeeping branches on it.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
