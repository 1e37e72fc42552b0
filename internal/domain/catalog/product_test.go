package catalog

import (
	"errors"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates product with valid inputs", func(t *testing.T) {
		p, err := NewProduct(tenantID, "sp-001", "Cà phê sữa", "ly")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, tenantID, p.TenantID)
		assert.Equal(t, "SP-001", p.SKU)
		assert.Equal(t, "ca phe sua", p.SearchName)
		assert.Equal(t, int64(0), p.Stock)
		assert.True(t, p.CostPrice.IsZero())
		assert.Len(t, p.GetDomainEvents(), 1)
	})

	t.Run("fails with empty sku", func(t *testing.T) {
		_, err := NewProduct(tenantID, " ", "Tea", "cup")
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct(tenantID, "SKU", "", "cup")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with empty unit", func(t *testing.T) {
		_, err := NewProduct(tenantID, "SKU", "Tea", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit cannot be empty")
	})
}

func TestProduct_AdjustStock(t *testing.T) {
	p, err := NewProduct(uuid.New(), "SKU-1", "Tea", "box")
	require.NoError(t, err)

	t.Run("increments", func(t *testing.T) {
		balance, err := p.AdjustStock(10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), balance)
	})

	t.Run("decrements down to zero", func(t *testing.T) {
		balance, err := p.AdjustStock(-10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("rejects going negative and keeps balance", func(t *testing.T) {
		_, err := p.AdjustStock(3)
		require.NoError(t, err)

		_, err = p.AdjustStock(-5)
		require.Error(t, err)

		var ise *shared.InsufficientStockError
		require.True(t, errors.As(err, &ise))
		assert.Equal(t, int64(3), ise.Available)
		assert.Equal(t, int64(5), ise.Requested)
		assert.Equal(t, "Tea", ise.ProductName)
		assert.Equal(t, int64(3), p.Stock)
	})
}

func TestProduct_Prices(t *testing.T) {
	p, err := NewProduct(uuid.New(), "SKU-1", "Tea", "box")
	require.NoError(t, err)

	require.NoError(t, p.SetPrices(decimal.NewFromInt(25000), decimal.NewFromInt(18000)))
	assert.True(t, p.SellPrice.Equal(decimal.NewFromInt(25000)))

	assert.Error(t, p.SetPrices(decimal.NewFromInt(-1), decimal.Zero))
	assert.Error(t, p.UpdateCostPrice(decimal.NewFromInt(-1)))
	assert.Error(t, p.SetVATRate(decimal.NewFromInt(101)))
	require.NoError(t, p.SetVATRate(decimal.NewFromInt(8)))
}

func TestNormalizeSearchText(t *testing.T) {
	tests := map[string]string{
		"Cà phê Sữa":       "ca phe sua",
		"Đường  trắng":     "duong trang",
		"  Bánh   mì  ":    "banh mi",
		"plain ascii TEXT": "plain ascii text",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeSearchText(in), in)
	}
}
