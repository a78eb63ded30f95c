package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/domain/applicant"
	"jobboard/internal/domain/recruiter"
	"jobboard/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type LoginInput struct {
	Email    string
	Password string
}

// ApplicantProfiles is the slice of the applicant repository registration
// needs: the idempotent profile ensure.
type ApplicantProfiles interface {
	EnsureProfile(ctx context.Context, userID uuid.UUID) (applicant.Profile, error)
}

type RecruiterProfiles interface {
	EnsureProfile(ctx context.Context, userID uuid.UUID) (recruiter.Profile, error)
}

type Service struct {
	users      user.Repository
	applicants ApplicantProfiles
	recruiters RecruiterProfiles
}

func NewService(users user.Repository, applicants ApplicantProfiles, recruiters RecruiterProfiles) *Service {
	return &Service{users: users, applicants: applicants, recruiters: recruiters}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}
	if !user.IsValidRole(in.Role) {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}

	if err := s.users.CreateUserWithProfile(ctx, u, in.Role); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	// The role profile is created up front so a new account is complete
	// without ever visiting its profile page. The lazy ensure on first
	// access stays as the tolerance path for older rows.
	if err := s.ensureRoleProfile(ctx, u.ID, in.Role); err != nil {
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func (s *Service) ensureRoleProfile(ctx context.Context, userID uuid.UUID, role string) error {
	switch role {
	case user.RoleApplicant:
		if s.applicants == nil {
			return nil
		}
		_, err := s.applicants.EnsureProfile(ctx, userID)
		return err
	case user.RoleRecruiter:
		if s.recruiters == nil {
			return nil
		}
		_, err := s.recruiters.EnsureProfile(ctx, userID)
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
