package applicant

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound    = errors.New("applicant profile not found")
	ErrEducationNotFound  = errors.New("education record not found")
	ErrExperienceNotFound = errors.New("work experience record not found")
)

type Repository interface {
	// EnsureProfile creates an empty profile for the user if none exists
	// and returns the profile either way. Idempotent.
	EnsureProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, p Profile) (Profile, error)

	CreateEducation(ctx context.Context, e Education) (Education, error)
	UpdateEducation(ctx context.Context, e Education) (Education, error)
	DeleteEducation(ctx context.Context, profileID, id uuid.UUID) error
	ListEducation(ctx context.Context, profileID uuid.UUID) ([]Education, error)

	CreateExperience(ctx context.Context, w WorkExperience) (WorkExperience, error)
	UpdateExperience(ctx context.Context, w WorkExperience) (WorkExperience, error)
	DeleteExperience(ctx context.Context, profileID, id uuid.UUID) error
	ListExperience(ctx context.Context, profileID uuid.UUID) ([]WorkExperience, error)
}
