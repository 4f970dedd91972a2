package implementation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"support-helpline-be/internal/constant"
	"support-helpline-be/internal/repository/contract"
	"support-helpline-be/pkg/convo"

	"github.com/redis/go-redis/v9"
)

type historyRepository struct {
	rdb *redis.Client
}

func NewHistoryRepository(rdb *redis.Client) contract.IHistoryRepository {
	return &historyRepository{rdb: rdb}
}

func sessionKey(sessionId string) string {
	return constant.SessionKeyPrefix + sessionId + constant.SessionKeySuffix
}

func (r *historyRepository) Range(ctx context.Context, sessionId string) ([]convo.Turn, error) {
	raw, err := r.rdb.LRange(ctx, sessionKey(sessionId), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session history: %w", err)
	}

	turns := make([]convo.Turn, 0, len(raw))
	for _, item := range raw {
		var turn convo.Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			// One corrupt entry poisons the whole read; the caller
			// degrades to an empty history.
			return nil, fmt.Errorf("failed to decode stored turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *historyRepository) Append(ctx context.Context, sessionId string, turn convo.Turn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to encode turn: %w", err)
	}
	return r.rdb.RPush(ctx, sessionKey(sessionId), data).Err()
}

func (r *historyRepository) TrimToLast(ctx context.Context, sessionId string, n int) error {
	return r.rdb.LTrim(ctx, sessionKey(sessionId), int64(-n), -1).Err()
}

func (r *historyRepository) Expire(ctx context.Context, sessionId string, ttl time.Duration) error {
	return r.rdb.Expire(ctx, sessionKey(sessionId), ttl).Err()
}
