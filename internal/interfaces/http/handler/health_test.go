package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProbe struct {
	mock.Mock
}

func (m *mockProbe) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockProbe) Stats() (persistence.ConnectionStats, error) {
	args := m.Called()
	return args.Get(0).(persistence.ConnectionStats), args.Error(1)
}

func TestHealthHandler_Check(t *testing.T) {
	serve := func(probe *mockProbe) (*httptest.ResponseRecorder, handler.HealthResponse) {
		engine := gin.New()
		engine.GET("/health", handler.NewHealthHandler(probe, "1.2.0").Check)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		var body handler.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("healthy with pool stats", func(t *testing.T) {
		probe := new(mockProbe)
		probe.On("Ping", mock.Anything).Return(nil)
		probe.On("Stats").Return(persistence.ConnectionStats{MaxOpenConnections: 25, OpenConnections: 3}, nil)

		w, body := serve(probe)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "1.2.0", body.Version)
		require.NotNil(t, body.Pool)
		assert.Equal(t, 25, body.Pool.MaxOpenConnections)
		probe.AssertExpectations(t)
	})

	t.Run("database down", func(t *testing.T) {
		probe := new(mockProbe)
		probe.On("Ping", mock.Anything).Return(errors.New("connection refused"))

		w, body := serve(probe)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, "error", body.Database)
		assert.Nil(t, body.Pool)
		probe.AssertNotCalled(t, "Stats")
	})
}
