package memory

import (
	"context"
	"sync"
	"time"

	"support-helpline-be/internal/constant"
	"support-helpline-be/internal/repository/contract"
	"support-helpline-be/pkg/convo"

	"github.com/patrickmn/go-cache"
)

// HistoryRepository keeps session histories in process memory. It backs the
// tests and serves as the degraded store when Redis is unreachable at boot.
type HistoryRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewHistoryRepository() *HistoryRepository {
	// Expiry mirrors the Redis session TTL; expired lists are purged
	// every 10 minutes.
	return &HistoryRepository{
		cache: cache.New(constant.SessionTTL, 10*time.Minute),
	}
}

var _ contract.IHistoryRepository = (*HistoryRepository)(nil)

func (r *HistoryRepository) Range(ctx context.Context, sessionId string) ([]convo.Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := r.load(sessionId)
	out := make([]convo.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (r *HistoryRepository) Append(ctx context.Context, sessionId string, turn convo.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := append(r.load(sessionId), turn)
	r.cache.Set(sessionId, turns, cache.DefaultExpiration)
	return nil
}

func (r *HistoryRepository) TrimToLast(ctx context.Context, sessionId string, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := r.load(sessionId)
	if len(turns) > n {
		turns = turns[len(turns)-n:]
		r.cache.Set(sessionId, turns, cache.DefaultExpiration)
	}
	return nil
}

func (r *HistoryRepository) Expire(ctx context.Context, sessionId string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if turns := r.load(sessionId); len(turns) > 0 {
		r.cache.Set(sessionId, turns, ttl)
	}
	return nil
}

// load must be called with the mutex held.
func (r *HistoryRepository) load(sessionId string) []convo.Turn {
	if x, found := r.cache.Get(sessionId); found {
		return x.([]convo.Turn)
	}
	return nil
}
