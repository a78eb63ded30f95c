package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobboard/internal/domain/user"
)

type gateUserRepo struct {
	profiles map[uuid.UUID]user.Profile
}

func (m *gateUserRepo) CreateUserWithProfile(context.Context, user.User, string) error { return nil }

func (m *gateUserRepo) GetUserByID(context.Context, uuid.UUID) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (m *gateUserRepo) GetUserByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (m *gateUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (m *gateUserRepo) UpdateUser(context.Context, user.User) error { return nil }

func (m *gateUserRepo) GetProfileByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

// newGateApp builds a minimal app with both gated dashboards. userID, when
// non-nil, is injected into locals the way the auth middleware would.
func newGateApp(users user.Repository, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware().Middleware())

	gate := NewRoleGateMiddleware(users)
	asUser := func(c fiber.Ctx) error {
		if userID != uuid.Nil {
			c.Locals(CtxUserIDKey, userID)
		}
		return c.Next()
	}
	ok := func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

	app.Get(applicantHome, asUser, gate.RequireApplicant(), ok)
	app.Get(recruiterHome, asUser, gate.RequireRecruiter(), ok)
	return app
}

func TestRoleGate_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	userID := uuid.New()
	users := &gateUserRepo{profiles: map[uuid.UUID]user.Profile{
		userID: {UserID: userID, Role: user.RoleApplicant},
	}}
	app := newGateApp(users, userID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, recruiterHome, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != applicantHome {
		t.Fatalf("location = %q, want %q", loc, applicantHome)
	}
}

func TestRoleGate_MatchingRolePasses(t *testing.T) {
	userID := uuid.New()
	users := &gateUserRepo{profiles: map[uuid.UUID]user.Profile{
		userID: {UserID: userID, Role: user.RoleRecruiter},
	}}
	app := newGateApp(users, userID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, recruiterHome, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRoleGate_MissingProfileRedirectsHome(t *testing.T) {
	app := newGateApp(&gateUserRepo{}, uuid.New())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, applicantHome, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("location = %q, want /", loc)
	}
}

func TestRoleGate_UnauthenticatedRejected(t *testing.T) {
	app := newGateApp(&gateUserRepo{}, uuid.Nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, applicantHome, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
