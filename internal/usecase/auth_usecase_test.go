package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/recruiter"
	"jobboard/internal/domain/user"
	jwtpkg "jobboard/internal/pkg/jwt"
	"jobboard/internal/usecase/auth"
)

type mockRecruiterRepo struct {
	profiles map[uuid.UUID]recruiter.Profile
}

func (m *mockRecruiterRepo) EnsureProfile(_ context.Context, userID uuid.UUID) (recruiter.Profile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	p := recruiter.Profile{ID: uuid.New(), UserID: userID}
	if m.profiles == nil {
		m.profiles = map[uuid.UUID]recruiter.Profile{}
	}
	m.profiles[p.ID] = p
	return p, nil
}

func (m *mockRecruiterRepo) GetProfileByUserID(_ context.Context, userID uuid.UUID) (recruiter.Profile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return recruiter.Profile{}, recruiter.ErrProfileNotFound
}

func (m *mockRecruiterRepo) UpdateProfile(_ context.Context, p recruiter.Profile) (recruiter.Profile, error) {
	m.profiles[p.ID] = p
	return p, nil
}

func newAuthUsecase(users *mockUserRepo) *AuthUsecase {
	svc := auth.NewService(users, &mockApplicantRepo{}, &mockRecruiterRepo{})
	tokens := jwtpkg.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(svc, users, tokens)
}

func TestAuthUsecase_RegisterIssuesRoleClaim(t *testing.T) {
	users := &mockUserRepo{}
	uc := newAuthUsecase(users)

	res, err := uc.Register(context.Background(), auth.RegisterInput{
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     user.RoleRecruiter,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.Role != user.RoleRecruiter {
		t.Fatalf("role = %q", res.Role)
	}
	if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
		t.Fatalf("token pair missing")
	}
}

func TestAuthUsecase_RefreshReloadsRoleFromStorage(t *testing.T) {
	users := &mockUserRepo{}
	uc := newAuthUsecase(users)

	res, err := uc.Register(context.Background(), auth.RegisterInput{
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     user.RoleApplicant,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	refreshed, err := uc.Refresh(context.Background(), res.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.Role != user.RoleApplicant {
		t.Fatalf("role = %q", refreshed.Role)
	}
	if refreshed.Tokens.AccessToken == "" {
		t.Fatalf("no new access token")
	}
}

func TestAuthUsecase_RefreshRejectsAccessToken(t *testing.T) {
	users := &mockUserRepo{}
	uc := newAuthUsecase(users)

	res, err := uc.Register(context.Background(), auth.RegisterInput{
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     user.RoleApplicant,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := uc.Refresh(context.Background(), res.Tokens.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_RefreshGarbage(t *testing.T) {
	uc := newAuthUsecase(&mockUserRepo{})

	if _, err := uc.Refresh(context.Background(), "garbage"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
