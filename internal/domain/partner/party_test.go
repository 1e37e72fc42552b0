package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("starts with zero debt", func(t *testing.T) {
		c, err := NewCustomer(uuid.New(), "kh001", "Nguyễn Văn An")
		require.NoError(t, err)
		assert.Equal(t, "KH001", c.Code)
		assert.Equal(t, "nguyen van an", c.SearchName)
		assert.True(t, c.Debt.IsZero())
		assert.False(t, c.HasDebt())
		assert.Len(t, c.GetDomainEvents(), 1)
	})

	t.Run("requires code and name", func(t *testing.T) {
		_, err := NewCustomer(uuid.New(), "", "An")
		require.Error(t, err)
		_, err = NewCustomer(uuid.New(), "KH1", "  ")
		require.Error(t, err)
	})
}

func TestDebtBalance_AdjustDebt(t *testing.T) {
	s, err := NewSupplier(uuid.New(), "NCC01", "Fresh Farm")
	require.NoError(t, err)

	assert.True(t, s.AdjustDebt(decimal.NewFromInt(600000)).Equal(decimal.NewFromInt(600000)))
	assert.True(t, s.HasDebt())
	assert.True(t, s.AdjustDebt(decimal.NewFromInt(-600000)).IsZero())
	assert.False(t, s.HasDebt())
}

func TestCustomer_Update(t *testing.T) {
	c, err := NewCustomer(uuid.New(), "KH1", "An")
	require.NoError(t, err)

	require.NoError(t, c.Update("Bình", "0901", "b@example.com", "Hà Nội", "", ""))
	assert.Equal(t, "Bình", c.Name)
	assert.Equal(t, "binh", c.SearchName)
	assert.Equal(t, "0901", c.Phone)
	assert.Equal(t, 2, c.Version)

	require.Error(t, c.Update("", "", "", "", "", ""))
}
