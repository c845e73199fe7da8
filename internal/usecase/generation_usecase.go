package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stujob/internal/domain/match"
	"stujob/internal/domain/matching"
	"stujob/internal/repository"
	"stujob/internal/worker"
)

var ErrRequestNotFound = errors.New("request not found")

const batchWorkers = 4

type MatchGenerationUsecase interface {
	GenerateMatches(ctx context.Context, requestID uuid.UUID) ([]match.Match, error)
	GenerateForRequests(ctx context.Context, requestIDs []uuid.UUID) (BatchGenerationResult, error)
}

// GenerationPolicy controls which scored candidates get persisted. MinScore
// is a creation threshold, independent of the display bands.
type GenerationPolicy struct {
	MinScore int
}

type MatchGeneration struct {
	requests   repository.RequestRepository
	candidates repository.CandidateRepository
	matches    repository.MatchRepository
	policy     GenerationPolicy
	cache      MatchCache
	logger     *zap.Logger
}

func NewMatchGeneration(
	requests repository.RequestRepository,
	candidates repository.CandidateRepository,
	matches repository.MatchRepository,
	policy GenerationPolicy,
	cache MatchCache,
	logger *zap.Logger,
) *MatchGeneration {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchGeneration{
		requests:   requests,
		candidates: candidates,
		matches:    matches,
		policy:     policy,
		cache:      cache,
		logger:     logger,
	}
}

// GenerateMatches scores the whole candidate pool against one request and
// persists qualifying pairings as proposed matches with their snapshot score.
// Pairs that already have a match are never written again, which makes the
// call idempotent: the existing set is read before any insert, and the
// store's unique constraint backstops concurrent callers. A single
// candidate's insert failure is logged and skipped; producing zero new
// matches is not an error.
func (u *MatchGeneration) GenerateMatches(ctx context.Context, requestID uuid.UUID) ([]match.Match, error) {
	if requestID == uuid.Nil {
		return nil, ErrRequestNotFound
	}

	req, err := u.requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("fetch request: %w", err)
	}

	existing, err := u.matches.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("fetch existing matches: %w", err)
	}
	paired := make(map[uuid.UUID]struct{}, len(existing))
	for _, m := range existing {
		paired[m.CandidateID] = struct{}{}
	}

	required, err := u.requests.FetchRequiredSkills(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("fetch required skills: %w", err)
	}

	pool, err := u.candidates.FetchPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch candidate pool: %w", err)
	}

	created := make([]match.Match, 0)
	for _, c := range pool {
		if c.ID == uuid.Nil {
			continue
		}
		if _, ok := paired[c.ID]; ok {
			continue
		}

		score := matching.Calculate(c.Skills, required)
		if score < u.policy.MinScore {
			continue
		}

		m, err := u.matches.Create(ctx, repository.MatchCreate{
			RequestID:   requestID,
			CandidateID: c.ID,
			Status:      match.StatusProposed,
			Score:       score,
		})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicatePairing) {
				// A concurrent generation won the insert; the pairing exists,
				// which is all the contract asks for.
				paired[c.ID] = struct{}{}
				continue
			}
			u.logger.Warn("match create failed, continuing",
				zap.String("request_id", requestID.String()),
				zap.String("candidate_id", c.ID.String()),
				zap.Error(err),
			)
			continue
		}

		paired[c.ID] = struct{}{}
		created = append(created, m)
	}

	if len(created) > 0 {
		invalidateRankCache(ctx, u.cache, requestID)
		u.logger.Info("matches generated",
			zap.String("request_id", requestID.String()),
			zap.String("request_title", req.Title),
			zap.Int("created", len(created)),
		)
	}

	return created, nil
}

type BatchGenerationResult struct {
	Created map[uuid.UUID][]match.Match
	Failed  map[uuid.UUID]error
}

// GenerateForRequests fans generation out over a bounded worker pool. Each
// request is independent; one request's failure never touches its siblings.
func (u *MatchGeneration) GenerateForRequests(ctx context.Context, requestIDs []uuid.UUID) (BatchGenerationResult, error) {
	res := BatchGenerationResult{
		Created: make(map[uuid.UUID][]match.Match, len(requestIDs)),
		Failed:  make(map[uuid.UUID]error),
	}
	if len(requestIDs) == 0 {
		return res, nil
	}

	pool := worker.NewPool(batchWorkers, len(requestIDs))

	var mu sync.Mutex
	for _, id := range requestIDs {
		id := id
		pool.Submit(func(ctx context.Context) error {
			ms, err := u.GenerateMatches(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed[id] = err
				return err
			}
			res.Created[id] = ms
			return nil
		})
	}
	pool.Close()

	for range pool.Run(ctx) {
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}
