package inventory

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// StockHistoryRepository persists the append-only stock ledger
type StockHistoryRepository interface {
	// Append writes a new ledger entry. Entries are never updated or deleted.
	Append(ctx context.Context, entry *StockHistoryEntry) error

	// FindByProduct lists entries of a product, newest first
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]StockHistoryEntry, error)

	// CountByProduct counts entries of a product
	CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error)

	// FindByReference lists entries written for a document number
	FindByReference(ctx context.Context, tenantID uuid.UUID, reference string) ([]StockHistoryEntry, error)

	// SumChangesByProduct sums every ChangeAmount of a product
	SumChangesByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error)
}

// InventoryCheckRepository defines the interface for inventory check persistence
type InventoryCheckRepository interface {
	// FindByIDForTenant finds a check with its lines
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*InventoryCheck, error)

	// FindByIDForUpdate finds a check and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*InventoryCheck, error)

	// FindAllForTenant lists checks without lines
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]InventoryCheck, error)

	// CountForTenant counts checks matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a check and replaces its lines
	Save(ctx context.Context, check *InventoryCheck) error

	// DeleteForTenant deletes a check and its lines
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
