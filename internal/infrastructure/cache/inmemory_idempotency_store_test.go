package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T) (*InMemoryIdempotencyStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)}
	store := NewInMemoryIdempotencyStore()
	store.now = clock.Now
	t.Cleanup(func() { store.Close() })
	return store, clock
}

func TestInMemoryIdempotencyStore_MarkProcessed(t *testing.T) {
	ctx := context.Background()

	t.Run("first claim wins and repeats are refused", func(t *testing.T) {
		store, _ := newTestStore(t)
		ok, err := store.MarkProcessed(ctx, "tenant-a:key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.MarkProcessed(ctx, "tenant-a:key-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)

		processed, err := store.IsProcessed(ctx, "tenant-a:key-1")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("expired claim can be taken again", func(t *testing.T) {
		store, clock := newTestStore(t)
		_, err := store.MarkProcessed(ctx, "key", time.Minute)
		require.NoError(t, err)

		clock.Advance(time.Minute)
		processed, err := store.IsProcessed(ctx, "key")
		require.NoError(t, err)
		assert.False(t, processed)

		ok, err := store.MarkProcessed(ctx, "key", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("release frees the key", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.MarkProcessed(ctx, "key", time.Hour)
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "key"))

		ok, err := store.MarkProcessed(ctx, "key", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestInMemoryIdempotencyStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestStore(t)

	store.MarkProcessed(ctx, "short-1", time.Second)
	store.MarkProcessed(ctx, "short-2", time.Second)
	store.MarkProcessed(ctx, "long", time.Hour)
	assert.Equal(t, 3, store.Size())

	clock.Advance(2 * time.Second)
	store.sweep()
	assert.Equal(t, 1, store.Size())

	processed, err := store.IsProcessed(ctx, "long")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestInMemoryIdempotencyStore_ConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	const workers = 100
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.MarkProcessed(ctx, "same-key", time.Hour)
			if err == nil && ok {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, won)
}

func TestInMemoryIdempotencyStore_Close(t *testing.T) {
	store := NewInMemoryIdempotencyStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestNewIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("redis disabled uses memory", func(t *testing.T) {
		store, err := NewIdempotencyStore(ctx, &config.Config{}, zap.NewNop())
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &InMemoryIdempotencyStore{}, store)
	})

	t.Run("unreachable redis falls back outside production", func(t *testing.T) {
		cfg := &config.Config{
			App:   config.AppConfig{Env: "development"},
			Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1},
		}
		store, err := NewIdempotencyStore(ctx, cfg, zap.NewNop())
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &InMemoryIdempotencyStore{}, store)
	})

	t.Run("unreachable redis fails in production", func(t *testing.T) {
		cfg := &config.Config{
			App:   config.AppConfig{Env: "production"},
			Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1},
		}
		_, err := NewIdempotencyStore(ctx, cfg, zap.NewNop())
		require.Error(t, err)
	})
}
