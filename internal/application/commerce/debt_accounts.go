package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtAccounts moves the stored receivable and payable balances.
// It is never called on its own, only as a side effect of a commerce operation.
type DebtAccounts struct{}

// NewDebtAccounts creates a DebtAccounts
func NewDebtAccounts() *DebtAccounts {
	return &DebtAccounts{}
}

// AdjustCustomer adds delta to a customer's debt and returns the change event.
// A zero delta does nothing and returns nil.
func (d *DebtAccounts) AdjustCustomer(ctx context.Context, repos TransactionalRepositories, tenantID, customerID uuid.UUID, delta decimal.Decimal) (shared.DomainEvent, error) {
	if delta.IsZero() {
		return nil, nil
	}
	customer, err := repos.Customers().FindByIDForUpdate(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	balance := customer.AdjustDebt(delta)
	customer.IncrementVersion()
	if err := repos.Customers().Save(ctx, customer); err != nil {
		return nil, err
	}
	return partner.NewDebtAdjustedEvent(partner.AggregateTypeCustomer, customer.ID, tenantID, delta, balance), nil
}

// AdjustSupplier adds delta to a supplier's debt and returns the change event.
// A zero delta does nothing and returns nil.
func (d *DebtAccounts) AdjustSupplier(ctx context.Context, repos TransactionalRepositories, tenantID, supplierID uuid.UUID, delta decimal.Decimal) (shared.DomainEvent, error) {
	if delta.IsZero() {
		return nil, nil
	}
	supplier, err := repos.Suppliers().FindByIDForUpdate(ctx, tenantID, supplierID)
	if err != nil {
		return nil, err
	}
	balance := supplier.AdjustDebt(delta)
	supplier.IncrementVersion()
	if err := repos.Suppliers().Save(ctx, supplier); err != nil {
		return nil, err
	}
	return partner.NewDebtAdjustedEvent(partner.AggregateTypeSupplier, supplier.ID, tenantID, delta, balance), nil
}
