package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/applicant"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// CandidateHandler serves the recruiter-facing candidate search over
// public applicant profiles.
type CandidateHandler struct {
	uc *usecase.CandidateSearchUsecase
}

func NewCandidateHandler(uc *usecase.CandidateSearchUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/candidates", h.Search)
	r.Get("/candidates/:id", h.Get)
}

func (h *CandidateHandler) Search(c fiber.Ctx) error {
	params := usecase.CandidateSearchParams{
		Keywords:         c.Query("keywords"),
		Skills:           queryMulti(c, "skills"),
		Location:         c.Query("location"),
		RemotePreference: c.Query("remote_preference"),

		WillingToRelocate: parseQueryFlag(c, "willing_to_relocate"),
		SeekingJobs:       parseQueryFlag(c, "seeking_jobs"),

		EducationLevel:  c.Query("education_level"),
		ExperienceYears: c.Query("experience_years"),

		Page: parseQueryIntLenient(c, "page", 1),
	}

	res, err := h.uc.Search(c.Context(), params)
	if err != nil {
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateSearchResponse(res))
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	}

	detail, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, applicant.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
		}
		return mapCommonUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateDetailResponse(detail))
}
