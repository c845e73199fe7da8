package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"stujob/internal/delivery/http/dto"
	"stujob/internal/delivery/http/middleware"
	"stujob/internal/pkg/response"
	"stujob/internal/usecase"
)

type ComparisonHandler struct {
	uc usecase.ComparisonUsecase
}

func NewComparisonHandler(uc usecase.ComparisonUsecase) *ComparisonHandler {
	return &ComparisonHandler{uc: uc}
}

func (h *ComparisonHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/requests/:request_id/candidates", h.Rank)
}

func (h *ComparisonHandler) Rank(c fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("request_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	modeRaw := c.Query("mode")
	if modeRaw == "" {
		modeRaw = string(usecase.ModeMatchedOnly)
	}
	mode, ok := usecase.ParseRankMode(modeRaw)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown mode", nil, nil)
	}

	ranked, err := h.uc.Rank(c.Context(), requestID, mode)
	if err != nil {
		return mapComparisonUsecaseError(err)
	}

	out := dto.RankingResponse{
		RequestID:  requestID,
		Mode:       string(mode),
		Candidates: make([]dto.RankedCandidateResponse, 0, len(ranked)),
	}
	for _, rc := range ranked {
		out.Candidates = append(out.Candidates, dto.RankedCandidateResponse{
			CandidateID:    rc.Candidate.ID,
			Name:           rc.Candidate.DisplayName(),
			City:           rc.Candidate.City,
			Score:          rc.Score,
			Band:           string(rc.Band),
			AlreadyMatched: rc.AlreadyMatched,
			MatchID:        rc.MatchID,
			MatchStatus:    string(rc.MatchStatus),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapComparisonUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Request not found", nil, err)
	case errors.Is(err, usecase.ErrUnknownRankMode):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown mode", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
