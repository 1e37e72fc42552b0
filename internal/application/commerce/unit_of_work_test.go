package commerce

import (
	"context"
	"errors"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubScope struct {
	calls int
}

func (s *stubScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	s.calls++
	return fn(nil)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func testEvent(tenantID uuid.UUID) shared.DomainEvent {
	e := shared.NewBaseDomainEvent("InvoiceCreated", "Invoice", uuid.New(), tenantID)
	return &e
}

func TestExecutor_Run(t *testing.T) {
	tenantID := uuid.New()

	t.Run("commits then publishes collected events", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		pub := new(MockPublisher)
		pub.On("Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
			return len(events) == 1 && events[0].EventType() == "InvoiceCreated"
		})).Return(nil).Once()

		scope := &stubScope{}
		exec := newExecutor(scope, pub, zap.New(core))
		err := exec.run(context.Background(), "InvoiceService", "Create", tenantID, func(u *unitOfWork) error {
			assert.Equal(t, tenantID, u.tenantID)
			u.emit(testEvent(tenantID), nil)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, scope.calls)
		pub.AssertExpectations(t)

		entries := logs.FilterMessage("commerce operation completed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "InvoiceService.Create", fields["operation"])
		assert.Equal(t, int64(1), fields["events"])
	})

	t.Run("failure publishes nothing and logs a warning", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		pub := new(MockPublisher)
		exec := newExecutor(&stubScope{}, pub, zap.New(core))

		err := exec.run(context.Background(), "InvoiceService", "RecordPayment", tenantID, func(u *unitOfWork) error {
			u.emit(testEvent(tenantID))
			return shared.ErrOverpayment
		})

		assert.ErrorIs(t, err, shared.ErrOverpayment)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		entries := logs.FilterMessage("commerce operation rejected").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("publisher failure does not fail the operation", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		pub := new(MockPublisher)
		pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus stopped"))
		exec := newExecutor(&stubScope{}, pub, zap.New(core))

		err := exec.run(context.Background(), "PurchaseService", "Create", tenantID, func(u *unitOfWork) error {
			u.emit(testEvent(tenantID))
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("failed to publish domain events").Len())
	})

	t.Run("no events skips the publisher", func(t *testing.T) {
		pub := new(MockPublisher)
		exec := newExecutor(&stubScope{}, pub, nil)

		require.NoError(t, exec.run(context.Background(), "QuoteService", "MarkSent", tenantID, func(*unitOfWork) error { return nil }))
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
