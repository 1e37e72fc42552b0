package partner

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier is a selling party. Debt is what the business owes the supplier.
type Supplier struct {
	shared.TenantAggregateRoot
	Contact
	DebtBalance
}

// NewSupplier creates a supplier with zero debt
func NewSupplier(tenantID uuid.UUID, code, name string) (*Supplier, error) {
	contact, err := newContact(code, name)
	if err != nil {
		return nil, err
	}
	s := &Supplier{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Contact:             contact,
		DebtBalance:         DebtBalance{Debt: decimal.Zero},
	}
	s.AddDomainEvent(NewPartyCreatedEvent(AggregateTypeSupplier, s.ID, s.TenantID, s.Code, s.Name))
	return s, nil
}

// Update edits name and contact details
func (s *Supplier) Update(name, phone, email, address, taxCode, note string) error {
	if err := s.Rename(name); err != nil {
		return err
	}
	s.SetDetails(phone, email, address, taxCode, note)
	s.IncrementVersion()
	return nil
}
