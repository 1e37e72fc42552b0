package finance

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

func receiptDetails(amount int64) VoucherDetails {
	return VoucherDetails{
		Type:             VoucherTypeReceipt,
		Category:         CategorySale,
		Amount:           decimal.NewFromInt(amount),
		VoucherDate:      time.Now(),
		CounterpartyName: "Walk-in",
		Description:      "sale HD-00001",
		Reference:        "HD-00001",
	}
}

func TestNewCashFlowVoucher(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates receipt voucher", func(t *testing.T) {
		v, err := NewCashFlowVoucher(tenantID, "PT-00001", VoucherSourceAuto, receiptDetails(500000))
		require.NoError(t, err)
		assert.True(t, v.IsReceipt())
		assert.True(t, v.SignedAmount().Equal(decimal.NewFromInt(500000)))
		assert.Len(t, v.GetDomainEvents(), 1)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewCashFlowVoucher(tenantID, "PT-00002", VoucherSourceAuto, receiptDetails(0))
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("rejects category of the other direction", func(t *testing.T) {
		d := receiptDetails(10)
		d.Category = CategoryRefund
		_, err := NewCashFlowVoucher(tenantID, "PT-00003", VoucherSourceManual, d)
		require.Error(t, err)
	})

	t.Run("input vat only on payments", func(t *testing.T) {
		vat := decimal.NewFromInt(1)
		d := receiptDetails(10)
		d.InputVAT = &vat
		_, err := NewCashFlowVoucher(tenantID, "PT-00004", VoucherSourceManual, d)
		require.Error(t, err)

		d.Type = VoucherTypePayment
		d.Category = CategoryOperatingExpense
		v, err := NewCashFlowVoucher(tenantID, "PC-00001", VoucherSourceManual, d)
		require.NoError(t, err)
		assert.True(t, v.SignedAmount().Equal(decimal.NewFromInt(-10)))
	})

	t.Run("input vat cannot exceed amount", func(t *testing.T) {
		vat := decimal.NewFromInt(11)
		d := VoucherDetails{Type: VoucherTypePayment, Category: CategoryOperatingExpense, Amount: decimal.NewFromInt(10), InputVAT: &vat}
		_, err := NewCashFlowVoucher(tenantID, "PC-00002", VoucherSourceManual, d)
		require.Error(t, err)
	})
}

func TestCashFlowVoucher_Edit(t *testing.T) {
	t.Run("manual voucher can be edited", func(t *testing.T) {
		v, err := NewCashFlowVoucher(uuid.New(), "PT-00001", VoucherSourceManual, receiptDetails(100))
		require.NoError(t, err)

		d := receiptDetails(150)
		d.Category = CategoryOtherIncome
		require.NoError(t, v.Edit(d))
		assert.True(t, v.Amount.Equal(decimal.NewFromInt(150)))
		assert.NoError(t, v.EnsureDeletable())
	})

	t.Run("type cannot change", func(t *testing.T) {
		v, err := NewCashFlowVoucher(uuid.New(), "PT-00001", VoucherSourceManual, receiptDetails(100))
		require.NoError(t, err)
		d := receiptDetails(100)
		d.Type = VoucherTypePayment
		d.Category = CategoryOtherExpense
		require.Error(t, v.Edit(d))
	})

	t.Run("automatic voucher is immutable", func(t *testing.T) {
		v, err := NewCashFlowVoucher(uuid.New(), "PT-00001", VoucherSourceAuto, receiptDetails(100))
		require.NoError(t, err)
		err = v.Edit(receiptDetails(1))
		assert.True(t, errors.Is(err, shared.ErrInvalidTransition))
		assert.True(t, errors.Is(v.EnsureDeletable(), shared.ErrInvalidTransition))
	})
}
