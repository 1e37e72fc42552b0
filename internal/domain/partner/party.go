package partner

import (
	"strings"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Contact holds the identity fields shared by customers and suppliers
type Contact struct {
	Code       string
	Name       string
	SearchName string
	Phone      string
	Email      string
	Address    string
	TaxCode    string
	Note       string
}

func newContact(code, name string) (Contact, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return Contact{}, shared.NewInvalidInputError("Code cannot be empty")
	}
	if len(code) > 50 {
		return Contact{}, shared.NewInvalidInputError("Code cannot exceed 50 characters")
	}
	if name == "" {
		return Contact{}, shared.NewInvalidInputError("Name cannot be empty")
	}
	if len(name) > 200 {
		return Contact{}, shared.NewInvalidInputError("Name cannot exceed 200 characters")
	}
	return Contact{
		Code:       strings.ToUpper(code),
		Name:       name,
		SearchName: catalog.NormalizeSearchText(name),
	}, nil
}

// Rename changes the display name
func (c *Contact) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewInvalidInputError("Name cannot be empty")
	}
	c.Name = name
	c.SearchName = catalog.NormalizeSearchText(name)
	return nil
}

// SetDetails sets the contact details
func (c *Contact) SetDetails(phone, email, address, taxCode, note string) {
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.TaxCode = taxCode
	c.Note = note
}

// DebtBalance is the running receivable or payable of a party.
// It is moved only by commerce operations, never edited directly.
type DebtBalance struct {
	Debt decimal.Decimal
}

// AdjustDebt adds a signed delta to the outstanding balance and returns the new one
func (d *DebtBalance) AdjustDebt(delta decimal.Decimal) decimal.Decimal {
	d.Debt = d.Debt.Add(delta)
	return d.Debt
}

// HasDebt reports whether a positive balance is outstanding
func (d *DebtBalance) HasDebt() bool {
	return d.Debt.IsPositive()
}
