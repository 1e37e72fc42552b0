package telemetry

import (
	"context"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestProvidersDisabled(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	cfg := config.TelemetryConfig{Enabled: false}

	tp, err := NewTracerProvider(ctx, cfg, logger)
	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())
	tp.EnableSpanProfiles()
	assert.NoError(t, tp.Shutdown(ctx))

	mp, err := NewMeterProvider(ctx, cfg, logger)
	require.NoError(t, err)
	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("x"))
	assert.NoError(t, mp.Shutdown(ctx))

	lp, err := NewLoggerProvider(ctx, cfg, logger)
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())
	assert.Nil(t, lp.Core())
	assert.NoError(t, lp.Shutdown(ctx))
}

func TestNewProfiler(t *testing.T) {
	t.Run("disabled is a no-op", func(t *testing.T) {
		p, err := NewProfiler(config.ProfilingConfig{}, "managersale", zap.NewNop())
		require.NoError(t, err)
		assert.False(t, p.IsEnabled())
		assert.NoError(t, p.Stop())
	})

	t.Run("enabled requires a server address", func(t *testing.T) {
		_, err := NewProfiler(config.ProfilingConfig{Enabled: true}, "managersale", zap.NewNop())
		require.Error(t, err)
	})
}

func TestRegisterDBTracing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	t.Run("skips when disabled", func(t *testing.T) {
		require.NoError(t, RegisterDBTracing(db, config.TelemetryConfig{Enabled: true}, zap.NewNop()))
		_, ok := db.Config.Plugins["otelgorm"]
		assert.False(t, ok)
	})

	t.Run("registers plugin", func(t *testing.T) {
		cfg := config.TelemetryConfig{Enabled: true, DBTraceEnabled: true}
		require.NoError(t, RegisterDBTracing(db, cfg, zap.NewNop()))
		_, ok := db.Config.Plugins["otelgorm"]
		assert.True(t, ok)
	})
}
