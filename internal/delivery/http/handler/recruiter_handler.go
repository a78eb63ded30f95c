package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/recruiter"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// RecruiterHandler covers the recruiter's own space: dashboard and company
// profile.
type RecruiterHandler struct {
	uc *usecase.RecruiterProfileUsecase
}

func NewRecruiterHandler(uc *usecase.RecruiterProfileUsecase) *RecruiterHandler {
	return &RecruiterHandler{uc: uc}
}

type recruiterProfileRequest struct {
	CompanyName        string `json:"company_name"`
	CompanySize        string `json:"company_size"`
	Industry           string `json:"industry"`
	Phone              string `json:"phone"`
	Website            string `json:"website"`
	City               string `json:"city"`
	State              string `json:"state"`
	Country            string `json:"country"`
	CompanyDescription string `json:"company_description"`
}

func (h *RecruiterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Dashboard)
	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
}

func (h *RecruiterHandler) Dashboard(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	d, err := h.uc.Dashboard(c.Context(), userID)
	if err != nil {
		return mapRecruiterError(err)
	}

	data := map[string]any{
		"user":              dto.NewUserResponse(d.User, ""),
		"profile":           dto.NewRecruiterProfileResponse(d.Profile),
		"job_count":         d.JobCount,
		"active_job_count":  d.ActiveJobCount,
		"application_count": d.ApplicationCount,
		"recent_jobs":       dto.NewJobResponses(d.RecentJobs),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *RecruiterHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetOrCreate(c.Context(), userID)
	if err != nil {
		return mapRecruiterError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterProfileResponse(p))
}

func (h *RecruiterHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req recruiterProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), userID, recruiter.Profile{
		CompanyName:        req.CompanyName,
		CompanySize:        req.CompanySize,
		Industry:           req.Industry,
		Phone:              req.Phone,
		Website:            req.Website,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		CompanyDescription: req.CompanyDescription,
	})
	if err != nil {
		return mapRecruiterError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterProfileResponse(p))
}

func mapRecruiterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
