package finance

import (
	"context"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherFilter narrows voucher listings
type VoucherFilter struct {
	shared.Filter
	Type     VoucherType
	Category VoucherCategory
	From     *time.Time
	To       *time.Time
}

// VoucherRepository defines the interface for cash-flow voucher persistence
type VoucherRepository interface {
	// FindByIDForTenant finds a voucher by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*CashFlowVoucher, error)

	// FindAllForTenant lists vouchers, newest first
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter VoucherFilter) ([]CashFlowVoucher, error)

	// CountForTenant counts vouchers matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter VoucherFilter) (int64, error)

	// FindByReference lists vouchers written for a document number
	FindByReference(ctx context.Context, tenantID uuid.UUID, reference string) ([]CashFlowVoucher, error)

	// SumByType totals voucher amounts of one type
	SumByType(ctx context.Context, tenantID uuid.UUID, voucherType VoucherType) (decimal.Decimal, error)

	// Save creates or updates a voucher
	Save(ctx context.Context, voucher *CashFlowVoucher) error

	// DeleteForTenant deletes a voucher
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error
}
