package v1

import (
	"log"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	ucauth "jobboard/internal/usecase/auth"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Register wires every v1 route group: the public board, auth, and the two
// role-gated spaces.
func Register(r fiber.Router, cfg config.Config, db database.DB, searchCache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	applicantRepo := repository.NewPostgresApplicantRepository(db)
	recruiterRepo := repository.NewPostgresRecruiterRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	candidateRepo := repository.NewPostgresCandidateSearchRepository(db)

	authSvc := ucauth.NewService(userRepo, applicantRepo, recruiterRepo)
	authUC := usecase.NewAuthUsecase(authSvc, userRepo, jwtSvc)
	jobSearchUC := usecase.NewJobSearchUsecase(jobRepo, applicationRepo, searchCache, logger)
	jobPostingUC := usecase.NewJobPostingUsecase(jobRepo, searchCache, hub, logger)
	applicationUC := usecase.NewApplicationUsecase(jobRepo, applicationRepo)
	applicantUC := usecase.NewApplicantProfileUsecase(applicantRepo, userRepo, applicationRepo, jobRepo)
	recruiterUC := usecase.NewRecruiterProfileUsecase(recruiterRepo, userRepo, jobRepo, applicationRepo)
	candidateUC := usecase.NewCandidateSearchUsecase(candidateRepo, applicantRepo, userRepo)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	roleGate := middleware.NewRoleGateMiddleware(userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	jobsHandler := handler.NewJobsHandler(jobSearchUC, jwtSvc)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	applicantHandler := handler.NewApplicantHandler(applicantUC)
	recruiterHandler := handler.NewRecruiterHandler(recruiterUC)
	recruiterJobsHandler := handler.NewRecruiterJobsHandler(jobPostingUC, applicationUC)
	candidateHandler := handler.NewCandidateHandler(candidateUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	jobsGroup := r.Group("/jobs")
	jobsHandler.RegisterRoutes(jobsGroup)

	applicantGroup := r.Group("/applicant", authMw.Middleware(), roleGate.RequireApplicant())
	applicantHandler.RegisterRoutes(applicantGroup)
	applicationHandler.RegisterRoutes(applicantGroup)

	recruiterGroup := r.Group("/recruiter", authMw.Middleware(), roleGate.RequireRecruiter())
	recruiterHandler.RegisterRoutes(recruiterGroup)
	recruiterJobsHandler.RegisterRoutes(recruiterGroup)
	candidateHandler.RegisterRoutes(recruiterGroup)
}
