package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrProfileNotFound = errors.New("user profile not found")
	ErrEmailTaken      = errors.New("email already registered")
)

type Repository interface {
	// CreateUserWithProfile inserts the user and its role profile in one
	// transaction so an account never exists without a role tag.
	CreateUserWithProfile(ctx context.Context, u User, role string) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u User) error

	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
}
