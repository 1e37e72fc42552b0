package shared

import (
	"context"
	"time"
)

// DefaultIdempotencyTTL is how long an accepted Idempotency-Key blocks repeats
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore holds claims on request keys.
//
// MarkProcessed is an atomic claim: exactly one caller observes true for a
// key until its ttl lapses or Release drops it.
type IdempotencyStore interface {
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
	IsProcessed(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
	Close() error
}
