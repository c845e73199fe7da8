package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stujob/internal/domain/candidate"
	"stujob/internal/domain/match"
	"stujob/internal/domain/matching"
	"stujob/internal/domain/skill"
	"stujob/internal/repository"
)

var ErrUnknownRankMode = errors.New("unknown rank mode")

// RankMode selects which view of a request's candidates to build. It is
// always passed explicitly; there is no ambient mode state.
type RankMode string

const (
	// ModeMatchedOnly renders persisted matches with their snapshot scores.
	ModeMatchedOnly RankMode = "matched"
	// ModeCompareAll recomputes live scores for the whole pool, excluding
	// candidates that already have a persisted match.
	ModeCompareAll RankMode = "all"
)

func ParseRankMode(raw string) (RankMode, bool) {
	switch RankMode(raw) {
	case ModeMatchedOnly:
		return ModeMatchedOnly, true
	case ModeCompareAll:
		return ModeCompareAll, true
	}
	return "", false
}

// RankedCandidate is one row of a ranking view. MatchID and MatchStatus are
// only set for rows backed by a persisted match.
type RankedCandidate struct {
	Candidate      candidate.Candidate
	Score          int
	Band           matching.Band
	AlreadyMatched bool
	MatchID        uuid.UUID
	MatchStatus    match.Status
}

type ComparisonUsecase interface {
	Rank(ctx context.Context, requestID uuid.UUID, mode RankMode) ([]RankedCandidate, error)
}

type Comparison struct {
	requests   repository.RequestRepository
	candidates repository.CandidateRepository
	matches    repository.MatchRepository
	cache      MatchCache
	logger     *zap.Logger
}

func NewComparison(
	requests repository.RequestRepository,
	candidates repository.CandidateRepository,
	matches repository.MatchRepository,
	cache MatchCache,
	logger *zap.Logger,
) *Comparison {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Comparison{
		requests:   requests,
		candidates: candidates,
		matches:    matches,
		cache:      cache,
		logger:     logger,
	}
}

// Rank builds the ranking for one request in the given mode, sorted by score
// descending. The result is derived from the request, the pool and the
// current persisted match set only; the cache entry is dropped on every
// match write, so it never outlives the state it was computed from by more
// than its TTL.
func (u *Comparison) Rank(ctx context.Context, requestID uuid.UUID, mode RankMode) ([]RankedCandidate, error) {
	if requestID == uuid.Nil {
		return nil, ErrRequestNotFound
	}
	if mode != ModeMatchedOnly && mode != ModeCompareAll {
		return nil, ErrUnknownRankMode
	}

	if u.cache != nil {
		var cached []RankedCandidate
		if ok, err := u.cache.GetJSON(ctx, rankCacheKey(requestID, mode), &cached); err == nil && ok {
			return cached, nil
		}
	}

	exists, err := u.requests.ExistsByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("check request: %w", err)
	}
	if !exists {
		return nil, ErrRequestNotFound
	}

	persisted, err := u.matches.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("fetch matches: %w", err)
	}

	pool, err := u.candidates.FetchPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch candidate pool: %w", err)
	}

	var out []RankedCandidate
	switch mode {
	case ModeMatchedOnly:
		out = u.rankMatched(persisted, pool)
	case ModeCompareAll:
		required, err := u.requests.FetchRequiredSkills(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("fetch required skills: %w", err)
		}
		out = rankCompareAll(pool, required, persisted)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, rankCacheKey(requestID, mode), out, rankCacheTTL)
	}

	return out, nil
}

// rankMatched renders persisted matches with their stored snapshot scores.
// Matches whose candidate disappeared from the pool are skipped but logged;
// the pairing stays persisted and resurfaces if the candidate returns.
func (u *Comparison) rankMatched(persisted []match.Match, pool []candidate.Candidate) []RankedCandidate {
	byID := make(map[uuid.UUID]candidate.Candidate, len(pool))
	for _, c := range pool {
		byID[c.ID] = c
	}

	out := make([]RankedCandidate, 0, len(persisted))
	for _, m := range persisted {
		c, ok := byID[m.CandidateID]
		if !ok {
			u.logger.Debug("matched candidate missing from pool",
				zap.String("match_id", m.ID.String()),
				zap.String("candidate_id", m.CandidateID.String()),
			)
			continue
		}
		out = append(out, RankedCandidate{
			Candidate:      c,
			Score:          m.Score,
			Band:           matching.MatchedThresholds.For(m.Score),
			AlreadyMatched: true,
			MatchID:        m.ID,
			MatchStatus:    m.Status,
		})
	}
	return out
}

// rankCompareAll recomputes live scores for every candidate without a
// persisted match; already-paired candidates are excluded so the view never
// offers a pairing action that would collide with an existing match.
func rankCompareAll(pool []candidate.Candidate, required []skill.RequiredSkill, persisted []match.Match) []RankedCandidate {
	paired := make(map[uuid.UUID]struct{}, len(persisted))
	for _, m := range persisted {
		paired[m.CandidateID] = struct{}{}
	}

	out := make([]RankedCandidate, 0, len(pool))
	for _, c := range pool {
		if _, ok := paired[c.ID]; ok {
			continue
		}
		score := matching.Calculate(c.Skills, required)
		out = append(out, RankedCandidate{
			Candidate:      c,
			Score:          score,
			Band:           matching.CompareThresholds.For(score),
			AlreadyMatched: false,
		})
	}
	return out
}
