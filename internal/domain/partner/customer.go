package partner

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a buying party. Debt is what the customer owes the business.
type Customer struct {
	shared.TenantAggregateRoot
	Contact
	DebtBalance
}

// NewCustomer creates a customer with zero debt
func NewCustomer(tenantID uuid.UUID, code, name string) (*Customer, error) {
	contact, err := newContact(code, name)
	if err != nil {
		return nil, err
	}
	c := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Contact:             contact,
		DebtBalance:         DebtBalance{Debt: decimal.Zero},
	}
	c.AddDomainEvent(NewPartyCreatedEvent(AggregateTypeCustomer, c.ID, c.TenantID, c.Code, c.Name))
	return c, nil
}

// Update edits name and contact details
func (c *Customer) Update(name, phone, email, address, taxCode, note string) error {
	if err := c.Rename(name); err != nil {
		return err
	}
	c.SetDetails(phone, email, address, taxCode, note)
	c.IncrementVersion()
	return nil
}
