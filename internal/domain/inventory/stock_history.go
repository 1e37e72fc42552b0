package inventory

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// OperationType classifies a stock movement
type OperationType string

const (
	OperationInitial      OperationType = "INITIAL"
	OperationPurchaseIn   OperationType = "PURCHASE_IN"
	OperationSaleOut      OperationType = "SALE_OUT"
	OperationReturnIn     OperationType = "RETURN_IN"
	OperationReturnOut    OperationType = "RETURN_OUT"
	OperationManualAdjust OperationType = "MANUAL_ADJUST"
)

// IsValid checks if the operation type is known
func (o OperationType) IsValid() bool {
	switch o {
	case OperationInitial, OperationPurchaseIn, OperationSaleOut,
		OperationReturnIn, OperationReturnOut, OperationManualAdjust:
		return true
	}
	return false
}

// String returns the string representation of OperationType
func (o OperationType) String() string {
	return string(o)
}

// StockHistoryEntry is one immutable row of the stock ledger.
// BalanceAfter is the product's on-hand quantity right after ChangeAmount was applied.
type StockHistoryEntry struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	ProductID     uuid.UUID
	ProductSKU    string
	ProductName   string
	ChangeAmount  int64
	BalanceAfter  int64
	OperationType OperationType
	Reference     string
	Note          string
	CreatedAt     time.Time
}

// NewStockHistoryEntry creates a ledger entry
func NewStockHistoryEntry(
	tenantID, productID uuid.UUID,
	productSKU, productName string,
	change, balanceAfter int64,
	opType OperationType,
	reference, note string,
) (*StockHistoryEntry, error) {
	if productID == uuid.Nil {
		return nil, shared.NewInvalidInputError("Product ID cannot be empty")
	}
	if !opType.IsValid() {
		return nil, shared.NewInvalidInputError("Unknown stock operation type: " + string(opType))
	}
	if change == 0 {
		return nil, shared.NewInvalidInputError("Stock change cannot be zero")
	}
	if balanceAfter < 0 {
		return nil, shared.NewInvalidInputError("Stock balance cannot be negative")
	}

	return &StockHistoryEntry{
		ID:            uuid.New(),
		TenantID:      tenantID,
		ProductID:     productID,
		ProductSKU:    productSKU,
		ProductName:   productName,
		ChangeAmount:  change,
		BalanceAfter:  balanceAfter,
		OperationType: opType,
		Reference:     reference,
		Note:          note,
		CreatedAt:     time.Now(),
	}, nil
}

// IsInbound reports whether the entry added stock
func (e *StockHistoryEntry) IsInbound() bool {
	return e.ChangeAmount > 0
}
