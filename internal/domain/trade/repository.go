package trade

import (
	"context"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteRepository defines the interface for quote persistence
type QuoteRepository interface {
	// FindByIDForTenant finds a quote with its lines
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Quote, error)

	// FindByIDForUpdate finds a quote and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Quote, error)

	// FindAllForTenant lists quotes without lines
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Quote, error)

	// CountForTenant counts quotes matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a quote and its lines
	Save(ctx context.Context, quote *Quote) error
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByIDForTenant finds an order with its lines
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Order, error)

	// FindByIDForUpdate finds an order and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Order, error)

	// FindAllForTenant lists orders without lines
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Order, error)

	// CountForTenant counts orders matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByQuote counts orders created from a quote
	CountByQuote(ctx context.Context, tenantID, quoteID uuid.UUID) (int64, error)

	// Save creates or updates an order and its lines
	Save(ctx context.Context, order *Order) error
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByIDForTenant finds an invoice with its lines
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)

	// FindByIDForUpdate finds an invoice and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)

	// FindAllForTenant lists invoices without lines
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Invoice, error)

	// CountForTenant counts invoices matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// FindOverdueCandidates lists open invoices whose due date is before asOf
	FindOverdueCandidates(ctx context.Context, tenantID uuid.UUID, asOf time.Time) ([]Invoice, error)

	// SumOutstandingByCustomer sums total minus paid over a customer's non-cancelled invoices
	SumOutstandingByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (decimal.Decimal, error)

	// Save creates or updates an invoice and its lines
	Save(ctx context.Context, invoice *Invoice) error
}

// PurchaseRepository defines the interface for purchase persistence
type PurchaseRepository interface {
	// FindByIDForTenant finds a purchase with its lines
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Purchase, error)

	// FindByIDForUpdate finds a purchase and locks its row until the transaction ends
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*Purchase, error)

	// FindAllForTenant lists purchases without lines
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Purchase, error)

	// CountForTenant counts purchases matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// SumOutstandingBySupplier sums total minus paid over a supplier's non-returned purchases
	SumOutstandingBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID) (decimal.Decimal, error)

	// Save creates or updates a purchase and its lines
	Save(ctx context.Context, purchase *Purchase) error
}
