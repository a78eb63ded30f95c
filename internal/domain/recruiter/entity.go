package recruiter

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SizeStartup    = "startup"
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeEnterprise = "enterprise"
)

func IsValidCompanySize(v string) bool {
	switch v {
	case SizeStartup, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return true
	}
	return false
}

var ErrProfileNotFound = errors.New("recruiter profile not found")

type Profile struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CompanyName        string
	CompanySize        string
	Industry           string
	Phone              string
	Website            string
	City               string
	State              string
	Country            string
	CompanyDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (p Profile) FullLocation() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.City, p.State, p.Country} {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

type Repository interface {
	// EnsureProfile creates an empty profile for the user if none exists
	// and returns the profile either way. Idempotent.
	EnsureProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, p Profile) (Profile, error)
}
