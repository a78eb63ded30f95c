package handler

import (
	"errors"
	"strings"
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/applicant"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ApplicantHandler covers the applicant's own space: dashboard, profile
// and the education and work-experience records behind it.
type ApplicantHandler struct {
	uc *usecase.ApplicantProfileUsecase
}

func NewApplicantHandler(uc *usecase.ApplicantProfileUsecase) *ApplicantHandler {
	return &ApplicantHandler{uc: uc}
}

type applicantProfileRequest struct {
	Headline   string   `json:"headline"`
	Phone      string   `json:"phone"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`

	WillingToRelocate    bool     `json:"willing_to_relocate"`
	RemoteWorkPreference string   `json:"remote_work_preference"`
	Summary              string   `json:"summary"`
	Skills               []string `json:"skills"`

	LinkedinURL  string `json:"linkedin_url"`
	GithubURL    string `json:"github_url"`
	PortfolioURL string `json:"portfolio_url"`
	OtherURL     string `json:"other_url"`

	IsPublic      bool `json:"is_public"`
	IsSeekingJobs bool `json:"is_seeking_jobs"`
}

type educationRequest struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"field_of_study"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	IsCurrent    bool     `json:"is_current"`
	GPA          *float64 `json:"gpa"`
	Description  string   `json:"description"`
	Order        int      `json:"order"`
}

type experienceRequest struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (h *ApplicantHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Dashboard)
	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)

	r.Get("/educations", h.ListEducation)
	r.Post("/educations", h.AddEducation)
	r.Put("/educations/:id", h.UpdateEducation)
	r.Delete("/educations/:id", h.DeleteEducation)

	r.Get("/experiences", h.ListExperience)
	r.Post("/experiences", h.AddExperience)
	r.Put("/experiences/:id", h.UpdateExperience)
	r.Delete("/experiences/:id", h.DeleteExperience)
}

func (h *ApplicantHandler) Dashboard(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	d, err := h.uc.Dashboard(c.Context(), userID)
	if err != nil {
		return mapApplicantError(err)
	}

	recent := make([]dto.ApplicationWithJobResponse, 0, len(d.Recent))
	for _, it := range d.Recent {
		recent = append(recent, dto.ApplicationWithJobResponse{
			Application: dto.NewApplicationResponse(it.Application),
			Job:         dto.NewJobResponse(it.Job),
		})
	}

	data := map[string]any{
		"user":                dto.NewUserResponse(d.User, ""),
		"profile":             dto.NewApplicantProfileResponse(d.Profile),
		"application_count":   d.ApplicationCount,
		"recent_applications": recent,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *ApplicantHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetOrCreate(c.Context(), userID)
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicantProfileResponse(p))
}

func (h *ApplicantHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req applicantProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), userID, applicant.Profile{
		Headline:   req.Headline,
		Phone:      req.Phone,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,

		WillingToRelocate:    req.WillingToRelocate,
		RemoteWorkPreference: req.RemoteWorkPreference,
		Summary:              req.Summary,
		Skills:               req.Skills,

		LinkedinURL:  req.LinkedinURL,
		GithubURL:    req.GithubURL,
		PortfolioURL: req.PortfolioURL,
		OtherURL:     req.OtherURL,

		IsPublic:      req.IsPublic,
		IsSeekingJobs: req.IsSeekingJobs,
	})
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicantProfileResponse(p))
}

func (h *ApplicantHandler) ListEducation(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListEducation(c.Context(), userID)
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEducationResponses(items))
}

func (h *ApplicantHandler) AddEducation(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	e, err := h.bindEducation(c, uuid.Nil)
	if err != nil {
		return err
	}

	created, err := h.uc.AddEducation(c.Context(), userID, e)
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewEducationResponse(created))
}

func (h *ApplicantHandler) UpdateEducation(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Education record not found", nil, err)
	}

	e, bindErr := h.bindEducation(c, id)
	if bindErr != nil {
		return bindErr
	}

	updated, err := h.uc.UpdateEducation(c.Context(), userID, e)
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEducationResponse(updated))
}

func (h *ApplicantHandler) DeleteEducation(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Education record not found", nil, err)
	}

	if err := h.uc.DeleteEducation(c.Context(), userID, id); err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ApplicantHandler) ListExperience(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.ListExperience(c.Context(), userID)
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkExperienceResponses(items))
}

func (h *ApplicantHandler) AddExperience(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	w, err := h.bindExperience(c, uuid.Nil)
	if err != nil {
		return err
	}

	created, err := h.uc.AddExperience(c.Context(), userID, w)
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewWorkExperienceResponse(created))
}

func (h *ApplicantHandler) UpdateExperience(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Work experience record not found", nil, err)
	}

	w, bindErr := h.bindExperience(c, id)
	if bindErr != nil {
		return bindErr
	}

	updated, err := h.uc.UpdateExperience(c.Context(), userID, w)
	if err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkExperienceResponse(updated))
}

func (h *ApplicantHandler) DeleteExperience(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Work experience record not found", nil, err)
	}

	if err := h.uc.DeleteExperience(c.Context(), userID, id); err != nil {
		return mapApplicantError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ApplicantHandler) bindEducation(c fiber.Ctx, id uuid.UUID) (applicant.Education, error) {
	var req educationRequest
	if err := c.Bind().Body(&req); err != nil {
		return applicant.Education{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return applicant.Education{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return applicant.Education{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	return applicant.Education{
		ID:           id,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    start,
		EndDate:      end,
		IsCurrent:    req.IsCurrent,
		GPA:          req.GPA,
		Description:  req.Description,
		Order:        req.Order,
	}, nil
}

func (h *ApplicantHandler) bindExperience(c fiber.Ctx, id uuid.UUID) (applicant.WorkExperience, error) {
	var req experienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return applicant.WorkExperience{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return applicant.WorkExperience{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return applicant.WorkExperience{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	return applicant.WorkExperience{
		ID:          id,
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   start,
		EndDate:     end,
		IsCurrent:   req.IsCurrent,
		Location:    req.Location,
		Description: req.Description,
		Order:       req.Order,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(s))
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapApplicantError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, applicant.ErrEducationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Education record not found", nil, err)
	case errors.Is(err, applicant.ErrExperienceNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Work experience record not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
