package cache

import (
	"context"
	"fmt"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore picks the Redis store when Redis is enabled and the
// in-memory store otherwise. In production an unreachable Redis is an error;
// elsewhere it falls back to memory with a warning.
func NewIdempotencyStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (shared.IdempotencyStore, error) {
	if !cfg.Redis.Enabled {
		logger.Info("using in-memory idempotency store")
		return NewInMemoryIdempotencyStore(), nil
	}

	store, err := NewRedisIdempotencyStore(ctx, cfg.Redis)
	if err == nil {
		logger.Info("using Redis idempotency store", zap.String("addr", cfg.Redis.Addr()))
		return store, nil
	}
	if cfg.IsProduction() {
		return nil, fmt.Errorf("redis required for idempotency: %w", err)
	}
	logger.Warn("Redis unavailable, falling back to in-memory idempotency store", zap.Error(err))
	return NewInMemoryIdempotencyStore(), nil
}
