package routes

import (
	"github.com/gofiber/fiber/v3"

	"stujob/internal/delivery/http/handler"
	"stujob/internal/delivery/http/middleware"
	"stujob/internal/pkg/jwt"
	"stujob/internal/repository"
	"stujob/internal/usecase"
)

func (r *Registry) registerV1(grp fiber.Router) {
	if grp == nil {
		return
	}

	requestRepo := repository.NewPostgresRequestRepository(r.db)
	candidateRepo := repository.NewPostgresCandidateRepository(r.db)
	matchRepo := repository.NewPostgresMatchRepository(r.db)

	policy := usecase.GenerationPolicy{MinScore: r.cfg.Matching.MinScore}
	generationUC := usecase.NewMatchGeneration(requestRepo, candidateRepo, matchRepo, policy, r.cache, r.logger)
	lifecycleUC := usecase.NewMatchLifecycle(matchRepo, r.cache, r.logger)
	comparisonUC := usecase.NewComparison(requestRepo, candidateRepo, matchRepo, r.cache, r.logger)

	comparisonHandler := handler.NewComparisonHandler(comparisonUC)
	comparisonHandler.RegisterRoutes(grp)

	// Generation and lifecycle mutate the match store; admin token required.
	authMw := middleware.NewAuthMiddleware(jwt.NewHMACService(r.cfg.JWT.AccessSecret))
	protected := grp.Group("", authMw.Middleware())

	matchHandler := handler.NewMatchHandler(generationUC, lifecycleUC)
	matchHandler.RegisterRoutes(protected)
}
