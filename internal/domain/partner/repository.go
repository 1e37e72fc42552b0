package partner

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// PartyRepository stores one kind of trading partner. Every method is scoped
// to a tenant; filter.Search matches code, phone or the accent-folded name.
//
// FindByIDForUpdate holds a row lock until the surrounding transaction ends
// and is how debt adjustments serialize.
type PartyRepository[T any] interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error)
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*T, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]T, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
	Save(ctx context.Context, party *T) error
}

type (
	CustomerRepository = PartyRepository[Customer]
	SupplierRepository = PartyRepository[Supplier]
)
