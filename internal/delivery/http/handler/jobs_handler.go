package handler

import (
	"errors"
	"strconv"
	"strings"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// JobsHandler serves the public job board: search and posting detail.
// Filters are parsed defensively; a malformed value drops the filter
// instead of failing the whole search.
type JobsHandler struct {
	uc  *usecase.JobSearchUsecase
	jwt jwt.Service
}

func NewJobsHandler(uc *usecase.JobSearchUsecase, jwtSvc jwt.Service) *JobsHandler {
	return &JobsHandler{uc: uc, jwt: jwtSvc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Search)
	r.Get("/:id", h.Get)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	params := usecase.JobSearchParams{
		Keywords:         c.Query("keywords"),
		Location:         c.Query("location"),
		JobTypes:         queryMulti(c, "job_type"),
		RemoteTypes:      queryMulti(c, "remote_type"),
		ExperienceLevels: queryMulti(c, "experience_level"),
		SalaryMin:        parseQueryFloatLenient(c, "salary_min"),
		VisaSponsorship:  parseQueryFlag(c, "visa_sponsorship"),
		Skills:           queryMulti(c, "skills"),
		Page:             parseQueryIntLenient(c, "page", 1),
	}

	res, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobSearchResponse{
		Jobs:       dto.NewJobResponses(res.Jobs),
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
	})
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	detail, err := h.uc.GetActive(c.Context(), id, h.optionalViewer(c))
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.JobDetailResponse{
		Job:        dto.NewJobResponse(detail.Job),
		HasApplied: detail.HasApplied,
	})
}

// optionalViewer extracts the caller's identity when a valid access token
// rides along. The route stays public; an absent or bad token just means
// no has_applied flag.
func (h *JobsHandler) optionalViewer(c fiber.Ctx) *uuid.UUID {
	if h.jwt == nil {
		return nil
	}
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return nil
	}
	claims, err := h.jwt.ValidateToken(tok)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		return nil
	}
	id := claims.UserID
	if id == uuid.Nil {
		return nil
	}
	return &id
}

// queryMulti collects repeated query parameters, splitting each occurrence
// on commas as well, so ?skills=go,sql and ?skills=go&skills=sql read the
// same.
func queryMulti(c fiber.Ctx, key string) []string {
	raw := c.Request().URI().QueryArgs().PeekMulti(key)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(string(v), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseQueryFloatLenient(c fiber.Ctx, key string) *float64 {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func parseQueryIntLenient(c fiber.Ctx, key string, defaultVal int) int {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return defaultVal
	}
	return v
}

// parseQueryFlag treats presence with a truthy value as on; anything else
// is off.
func parseQueryFlag(c fiber.Ctx, key string) bool {
	s := strings.ToLower(strings.TrimSpace(c.Query(key)))
	switch s {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func mapCommonUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
