package catalog

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository is tenant scoped throughout. Lookups return
// shared.ErrNotFound for a missing or foreign product.
type ProductRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	// FindByIDForUpdate locks the row (SELECT ... FOR UPDATE) so stock
	// changes on the same product serialize.
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	// LockByIDs locks a set of products in ascending id order. Stock-moving
	// operations call it before any other row lock so concurrent sales
	// never wait on each other in opposite orders.
	LockByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]Product, error)
	FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*Product, error)
	// FindAllForTenant matches filter.Search against SKU or the folded name
	// and filter.Filters["category"] exactly.
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Product, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error)
	Save(ctx context.Context, product *Product) error
}
