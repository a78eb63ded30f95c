package middleware

import (
	"errors"

	"jobboard/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

const (
	applicantHome = "/api/v1/applicant/dashboard"
	recruiterHome = "/api/v1/recruiter/dashboard"
)

// RoleGateMiddleware guards role-scoped route groups. A signed-in user of
// the other role is bounced to their own dashboard with a 303 rather than
// rejected, mirroring how the site steers users instead of erroring.
type RoleGateMiddleware struct {
	users user.Repository
}

func NewRoleGateMiddleware(users user.Repository) *RoleGateMiddleware {
	return &RoleGateMiddleware{users: users}
}

func (m *RoleGateMiddleware) RequireApplicant() fiber.Handler {
	return m.require(user.RoleApplicant, applicantHome, recruiterHome)
}

func (m *RoleGateMiddleware) RequireRecruiter() fiber.Handler {
	return m.require(user.RoleRecruiter, recruiterHome, applicantHome)
}

func (m *RoleGateMiddleware) require(role, ownHome, otherHome string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, ok := UserIDFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		// The role is re-read from storage so a stale token claim can
		// never cross the gate.
		profile, err := m.users.GetProfileByUserID(c.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrProfileNotFound) {
				return c.Redirect().Status(fiber.StatusSeeOther).To("/")
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		if profile.Role != role {
			return c.Redirect().Status(fiber.StatusSeeOther).To(otherHome)
		}

		c.Locals(CtxRoleKey, profile.Role)
		return c.Next()
	}
}
