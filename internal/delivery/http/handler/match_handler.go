package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"stujob/internal/delivery/http/dto"
	"stujob/internal/delivery/http/middleware"
	"stujob/internal/domain/match"
	"stujob/internal/pkg/response"
	"stujob/internal/usecase"
)

type MatchHandler struct {
	generation usecase.MatchGenerationUsecase
	lifecycle  usecase.MatchLifecycleUsecase
}

type batchGenerateRequest struct {
	RequestIDs []uuid.UUID `json:"request_ids"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewMatchHandler(generation usecase.MatchGenerationUsecase, lifecycle usecase.MatchLifecycleUsecase) *MatchHandler {
	return &MatchHandler{generation: generation, lifecycle: lifecycle}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/requests/:request_id/matches", h.Generate)
	r.Post("/matches/generate", h.GenerateBatch)
	r.Patch("/matches/:match_id/status", h.UpdateStatus)
}

func (h *MatchHandler) Generate(c fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("request_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.generation.GenerateMatches(c.Context(), requestID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.GenerationResponse{
		RequestID: requestID,
		Created:   len(created),
		Matches:   make([]dto.MatchResponse, 0, len(created)),
	}
	for _, m := range created {
		out.Matches = append(out.Matches, matchToResponse(m))
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, out)
}

func (h *MatchHandler) GenerateBatch(c fiber.Ctx) error {
	var req batchGenerateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if len(req.RequestIDs) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "request_ids is required", nil, nil)
	}

	res, err := h.generation.GenerateForRequests(c.Context(), req.RequestIDs)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.BatchGenerationResponse{Items: make([]dto.BatchGenerationItem, 0, len(req.RequestIDs))}
	for _, id := range req.RequestIDs {
		item := dto.BatchGenerationItem{RequestID: id, Created: len(res.Created[id])}
		if genErr, ok := res.Failed[id]; ok {
			item.Error = publicBatchError(genErr)
		}
		out.Items = append(out.Items, item)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) UpdateStatus(c fiber.Ctx) error {
	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	target, ok := match.ParseStatus(req.Status)
	if !ok {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown status", nil, nil)
	}

	updated, err := h.lifecycle.Transition(c.Context(), matchID, target)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, matchToResponse(updated))
}

func matchToResponse(m match.Match) dto.MatchResponse {
	return dto.MatchResponse{
		ID:          m.ID,
		RequestID:   m.RequestID,
		CandidateID: m.CandidateID,
		Status:      string(m.Status),
		Score:       m.Score,
		AdminNotes:  m.AdminNotes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// publicBatchError maps a per-request generation failure to a message safe
// for the response body.
func publicBatchError(err error) string {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return "request not found"
	default:
		return "generation failed"
	}
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Request not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Invalid status transition", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
