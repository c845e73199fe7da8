package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MatchCache is the optional caching port for ranking reads. A nil cache is
// always legal; every caller must degrade to the store.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const rankCacheTTL = 60 * time.Second

func rankCacheKey(requestID uuid.UUID, mode RankMode) string {
	return fmt.Sprintf("matching:rank:%s:%s", requestID, mode)
}

// invalidateRankCache drops both mode entries for a request. Called after any
// write that changes the persisted match set. Cache errors are best-effort.
func invalidateRankCache(ctx context.Context, cache MatchCache, requestID uuid.UUID) {
	if cache == nil || requestID == uuid.Nil {
		return
	}
	_ = cache.Delete(ctx, rankCacheKey(requestID, ModeMatchedOnly))
	_ = cache.Delete(ctx, rankCacheKey(requestID, ModeCompareAll))
}
