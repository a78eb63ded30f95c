package handler

import (
	"errors"
	"strings"
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// RecruiterJobsHandler covers posting management and the recruiter side of
// applications.
type RecruiterJobsHandler struct {
	postings     *usecase.JobPostingUsecase
	applications *usecase.ApplicationUsecase
}

func NewRecruiterJobsHandler(postings *usecase.JobPostingUsecase, applications *usecase.ApplicationUsecase) *RecruiterJobsHandler {
	return &RecruiterJobsHandler{postings: postings, applications: applications}
}

type jobRequest struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`

	JobType         string `json:"job_type"`
	RemoteType      string `json:"remote_type"`
	ExperienceLevel string `json:"experience_level"`

	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
	SalaryCurrency string   `json:"salary_currency"`
	SalaryPeriod   string   `json:"salary_period"`

	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`

	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`

	VisaSponsorship bool   `json:"visa_sponsorship"`
	Benefits        string `json:"benefits"`

	IsActive            *bool  `json:"is_active"`
	ApplicationDeadline string `json:"application_deadline"`
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *RecruiterJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.ListOwn)
	r.Post("/jobs", h.Create)
	r.Get("/jobs/:id", h.GetOwn)
	r.Put("/jobs/:id", h.Update)
	r.Get("/jobs/:id/applications", h.ListApplications)
	r.Patch("/applications/:id/status", h.UpdateStatus)
}

func (h *RecruiterJobsHandler) ListOwn(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobs, err := h.postings.ListOwn(c.Context(), userID)
	if err != nil {
		return mapRecruiterJobsError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(jobs))
}

func (h *RecruiterJobsHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	j, bindErr := bindJob(c)
	if bindErr != nil {
		return bindErr
	}

	created, err := h.postings.Create(c.Context(), userID, j)
	if err != nil {
		return mapRecruiterJobsError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewJobResponse(created))
}

func (h *RecruiterJobsHandler) GetOwn(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	j, err := h.postings.GetOwn(c.Context(), userID, jobID)
	if err != nil {
		return mapRecruiterJobsError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *RecruiterJobsHandler) Update(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	j, bindErr := bindJob(c)
	if bindErr != nil {
		return bindErr
	}

	updated, err := h.postings.Update(c.Context(), userID, jobID, j)
	if err != nil {
		return mapRecruiterJobsError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *RecruiterJobsHandler) ListApplications(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	apps, err := h.applications.ListForJob(c.Context(), userID, jobID)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponses(apps))
}

func (h *RecruiterJobsHandler) UpdateStatus(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}

	var req statusUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.applications.UpdateStatus(c.Context(), userID, appID, strings.TrimSpace(req.Status))
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(a))
}

func bindJob(c fiber.Ctx) (job.Job, error) {
	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return job.Job{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var deadline *time.Time
	if s := strings.TrimSpace(req.ApplicationDeadline); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return job.Job{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		deadline = &t
	}

	j := job.Job{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,

		JobType:         req.JobType,
		RemoteType:      req.RemoteType,
		ExperienceLevel: req.ExperienceLevel,

		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		SalaryCurrency: req.SalaryCurrency,
		SalaryPeriod:   req.SalaryPeriod,

		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,

		RequiredSkills:  req.RequiredSkills,
		PreferredSkills: req.PreferredSkills,

		VisaSponsorship: req.VisaSponsorship,
		Benefits:        req.Benefits,

		IsActive:            true,
		ApplicationDeadline: deadline,
	}
	if req.IsActive != nil {
		j.IsActive = *req.IsActive
	}
	return j, nil
}

func mapRecruiterJobsError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
