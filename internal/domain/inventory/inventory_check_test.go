package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCheck(t *testing.T) *InventoryCheck {
	t.Helper()
	c, err := NewInventoryCheck(uuid.New(), "KK-00001", time.Now(), "monthly count")
	require.NoError(t, err)
	return c
}

func TestNewInventoryCheck(t *testing.T) {
	t.Run("creates draft check", func(t *testing.T) {
		c := createTestCheck(t)
		assert.Equal(t, CheckStatusDraft, c.Status)
		assert.Equal(t, "KK-00001", c.CheckNumber)
		assert.True(t, c.IsDraft())
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("fails with empty number", func(t *testing.T) {
		_, err := NewInventoryCheck(uuid.New(), "", time.Now(), "")
		require.Error(t, err)
	})
}

func TestInventoryCheck_Adjustments(t *testing.T) {
	c := createTestCheck(t)
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, c.AddItem(p1, "A", "Rice", "kg", 100, 97, decimal.NewFromInt(20000), ""))
	require.NoError(t, c.AddItem(p2, "B", "Salt", "kg", 50, 55, decimal.NewFromInt(5000), ""))
	require.NoError(t, c.AddItem(p3, "C", "Sugar", "kg", 10, 10, decimal.NewFromInt(15000), ""))

	t.Run("only differing lines are adjusted", func(t *testing.T) {
		adj := c.Adjustments()
		require.Len(t, adj, 2)
		assert.Equal(t, int64(-3), adj[0].Difference())
		assert.Equal(t, int64(5), adj[1].Difference())
		assert.True(t, adj[0].DifferenceAmount().Equal(decimal.NewFromInt(-60000)))
	})

	t.Run("rejects duplicate product", func(t *testing.T) {
		err := c.AddItem(p1, "A", "Rice", "kg", 100, 100, decimal.Zero, "")
		require.Error(t, err)
	})

	t.Run("rejects negative count", func(t *testing.T) {
		err := c.RecordCount(p1, -1, "")
		require.Error(t, err)
	})
}

func TestInventoryCheck_Complete(t *testing.T) {
	t.Run("cannot complete without lines", func(t *testing.T) {
		c := createTestCheck(t)
		require.Error(t, c.Complete())
	})

	t.Run("completed check is frozen", func(t *testing.T) {
		c := createTestCheck(t)
		p := uuid.New()
		require.NoError(t, c.AddItem(p, "A", "Rice", "kg", 1, 2, decimal.Zero, ""))
		require.NoError(t, c.Complete())
		assert.Equal(t, CheckStatusCompleted, c.Status)
		assert.NotNil(t, c.CompletedAt)

		for _, err := range []error{
			c.Complete(),
			c.EnsureDeletable(),
			c.RecordCount(p, 3, ""),
			c.UpdateNote("x"),
			c.RemoveItem(p),
		} {
			require.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrInvalidTransition))
		}
	})

	t.Run("draft check can be edited and deleted", func(t *testing.T) {
		c := createTestCheck(t)
		p := uuid.New()
		require.NoError(t, c.AddItem(p, "A", "Rice", "kg", 1, 1, decimal.Zero, ""))
		require.NoError(t, c.RecordCount(p, 4, "recount"))
		assert.Equal(t, int64(4), c.Items[0].CountedQuantity)
		require.NoError(t, c.RemoveItem(p))
		assert.Empty(t, c.Items)
		assert.NoError(t, c.EnsureDeletable())
	})
}

func TestNewStockHistoryEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		e, err := NewStockHistoryEntry(uuid.New(), uuid.New(), "A", "Rice", -3, 97, OperationManualAdjust, "KK-00001", "")
		require.NoError(t, err)
		assert.False(t, e.IsInbound())
		assert.Equal(t, int64(97), e.BalanceAfter)
	})

	t.Run("rejects zero change", func(t *testing.T) {
		_, err := NewStockHistoryEntry(uuid.New(), uuid.New(), "A", "Rice", 0, 97, OperationManualAdjust, "", "")
		require.Error(t, err)
	})

	t.Run("rejects unknown operation", func(t *testing.T) {
		_, err := NewStockHistoryEntry(uuid.New(), uuid.New(), "A", "Rice", 1, 1, OperationType("TRANSFER"), "", "")
		require.Error(t, err)
	})

	t.Run("rejects negative balance", func(t *testing.T) {
		_, err := NewStockHistoryEntry(uuid.New(), uuid.New(), "A", "Rice", -1, -1, OperationSaleOut, "", "")
		require.Error(t, err)
	})
}
