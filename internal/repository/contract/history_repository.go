package contract

import (
	"context"
	"time"

	"support-helpline-be/pkg/convo"
)

// IHistoryRepository is the session store: an ordered list of turns per
// session identifier. Implementations make a single attempt per call; the
// service degrades on failure instead of retrying.
type IHistoryRepository interface {
	// Range returns the full stored history for a session, oldest first.
	// A missing session yields an empty slice, not an error.
	Range(ctx context.Context, sessionId string) ([]convo.Turn, error)

	// Append pushes one turn onto the end of the session's list.
	Append(ctx context.Context, sessionId string, turn convo.Turn) error

	// TrimToLast keeps only the most recent n turns.
	TrimToLast(ctx context.Context, sessionId string, n int) error

	// Expire resets the session's time-to-live.
	Expire(ctx context.Context, sessionId string, ttl time.Duration) error
}
