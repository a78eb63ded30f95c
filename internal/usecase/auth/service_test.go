package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"jobboard/internal/domain/applicant"
	"jobboard/internal/domain/recruiter"
	"jobboard/internal/domain/user"
)

type mockUserRepo struct {
	users    map[uuid.UUID]user.User
	profiles map[uuid.UUID]user.Profile
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:    map[uuid.UUID]user.User{},
		profiles: map[uuid.UUID]user.Profile{},
	}
}

func (m *mockUserRepo) CreateUserWithProfile(_ context.Context, u user.User, role string) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.users[u.ID] = u
	m.profiles[u.ID] = user.Profile{ID: uuid.New(), UserID: u.ID, Role: role}
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.GetUserByEmail(context.Background(), email)
	if errors.Is(err, user.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *mockUserRepo) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetProfileByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

type mockApplicantProfiles struct {
	ensured []uuid.UUID
}

func (m *mockApplicantProfiles) EnsureProfile(_ context.Context, userID uuid.UUID) (applicant.Profile, error) {
	m.ensured = append(m.ensured, userID)
	return applicant.Profile{ID: uuid.New(), UserID: userID}, nil
}

type mockRecruiterProfiles struct {
	ensured []uuid.UUID
}

func (m *mockRecruiterProfiles) EnsureProfile(_ context.Context, userID uuid.UUID) (recruiter.Profile, error) {
	m.ensured = append(m.ensured, userID)
	return recruiter.Profile{ID: uuid.New(), UserID: userID}, nil
}

func newTestService(repo *mockUserRepo) (*Service, *mockApplicantProfiles, *mockRecruiterProfiles) {
	applicants := &mockApplicantProfiles{}
	recruiters := &mockRecruiterProfiles{}
	return NewService(repo, applicants, recruiters), applicants, recruiters
}

func TestService_Register_NormalizesEmailAndStoresRole(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newTestService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:     "  Jane@Example.COM ",
		Password:  "s3cretpass",
		FirstName: " Jane ",
		LastName:  "Doe",
		Role:      user.RoleApplicant,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "jane@example.com" {
		t.Fatalf("email = %q, want normalized lowercase", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}

	p, err := repo.GetProfileByUserID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if p.Role != user.RoleApplicant {
		t.Fatalf("role = %q", p.Role)
	}
}

func TestService_Register_EnsuresRoleProfile(t *testing.T) {
	repo := newMockUserRepo()
	svc, applicants, recruiters := newTestService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     user.RoleApplicant,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(applicants.ensured) != 1 || applicants.ensured[0] != u.ID {
		t.Fatalf("applicant profile not ensured at registration: %v", applicants.ensured)
	}
	if len(recruiters.ensured) != 0 {
		t.Fatalf("recruiter profile ensured for an applicant: %v", recruiters.ensured)
	}

	r, err := svc.Register(context.Background(), RegisterInput{
		Email:    "rick@example.com",
		Password: "s3cretpass",
		Role:     user.RoleRecruiter,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if len(recruiters.ensured) != 1 || recruiters.ensured[0] != r.ID {
		t.Fatalf("recruiter profile not ensured at registration: %v", recruiters.ensured)
	}
	if len(applicants.ensured) != 1 {
		t.Fatalf("applicant ensure count changed: %v", applicants.ensured)
	}
}

func TestService_Register_InvalidRole(t *testing.T) {
	svc, _, _ := newTestService(newMockUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@b.com",
		Password: "s3cretpass",
		Role:     "admin",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newTestService(newMockUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@b.com",
		Password: "short",
		Role:     user.RoleApplicant,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newTestService(repo)

	in := RegisterInput{Email: "dup@example.com", Password: "s3cretpass", Role: user.RoleRecruiter}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	repo := newMockUserRepo()
	svc, _, _ := newTestService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     user.RoleApplicant,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "JANE@example.com", Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if u.Email != "jane@example.com" {
		t.Fatalf("email = %q", u.Email)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "jane@example.com", Password: "wrongpass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "s3cretpass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
