package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stujob/internal/domain/match"
	"stujob/internal/repository"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type MatchLifecycleUsecase interface {
	Transition(ctx context.Context, matchID uuid.UUID, target match.Status) (match.Match, error)
}

type MatchLifecycle struct {
	matches repository.MatchRepository
	cache   MatchCache
	logger  *zap.Logger
}

func NewMatchLifecycle(matches repository.MatchRepository, cache MatchCache, logger *zap.Logger) *MatchLifecycle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchLifecycle{matches: matches, cache: cache, logger: logger}
}

// Transition moves a match to target. Only proposed matches move, and only
// to accepted or rejected; both end states are terminal. Illegal transitions
// are rejected before any store write. The snapshot score is never touched,
// only status and updated_at change.
func (u *MatchLifecycle) Transition(ctx context.Context, matchID uuid.UUID, target match.Status) (match.Match, error) {
	if matchID == uuid.Nil {
		return match.Match{}, ErrMatchNotFound
	}
	if !target.Valid() {
		return match.Match{}, ErrInvalidTransition
	}

	m, err := u.matches.FindByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.Match{}, ErrMatchNotFound
		}
		return match.Match{}, fmt.Errorf("fetch match: %w", err)
	}

	if !m.Status.CanTransition(target) {
		return match.Match{}, ErrInvalidTransition
	}

	updated, err := u.matches.UpdateStatus(ctx, matchID, target)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return match.Match{}, ErrMatchNotFound
		}
		return match.Match{}, fmt.Errorf("update match status: %w", err)
	}

	u.logger.Info("match status changed",
		zap.String("match_id", updated.ID.String()),
		zap.String("status", string(updated.Status)),
	)
	invalidateRankCache(ctx, u.cache, updated.RequestID)

	return updated, nil
}
