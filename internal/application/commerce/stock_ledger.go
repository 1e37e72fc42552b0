package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/google/uuid"
)

// StockChange describes one signed movement of a product's on-hand quantity
type StockChange struct {
	ProductID uuid.UUID
	Delta     int64
	Operation inventory.OperationType
	Reference string
	Note      string
}

// StockLedger is the only writer of Product.Stock. Every change it applies
// is paired with an immutable history entry carrying the resulting balance.
type StockLedger struct{}

// NewStockLedger creates a StockLedger
func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// ChangeStock applies change inside the caller's transaction and returns the
// written history entry. A zero delta is a no-op and returns nil.
// A decrement below zero fails with *shared.InsufficientStockError; the caller
// must abort the whole transaction.
func (l *StockLedger) ChangeStock(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, change StockChange) (*inventory.StockHistoryEntry, error) {
	if change.Delta == 0 {
		return nil, nil
	}

	product, err := repos.Products().FindByIDForUpdate(ctx, tenantID, change.ProductID)
	if err != nil {
		return nil, err
	}

	balance, err := product.AdjustStock(change.Delta)
	if err != nil {
		return nil, err
	}

	entry, err := inventory.NewStockHistoryEntry(
		tenantID,
		product.ID,
		product.SKU,
		product.Name,
		change.Delta,
		balance,
		change.Operation,
		change.Reference,
		change.Note,
	)
	if err != nil {
		return nil, err
	}

	if err := repos.Products().Save(ctx, product); err != nil {
		return nil, err
	}
	if err := repos.StockHistory().Append(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}
