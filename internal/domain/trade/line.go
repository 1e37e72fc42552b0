package trade

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SaleLine is a product line of a quote, order or invoice.
// CostPrice is a snapshot of the product cost when the line was priced for sale;
// it stays frozen for profit reporting even if the product cost changes later.
type SaleLine struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductSKU  string
	ProductName string
	Unit        string
	Quantity    int64
	UnitPrice   decimal.Decimal
	VATRate     decimal.Decimal
	CostPrice   decimal.Decimal
}

// NewSaleLine creates a validated sale line
func NewSaleLine(productID uuid.UUID, sku, name, unit string, quantity int64, unitPrice, vatRate decimal.Decimal) (SaleLine, error) {
	if productID == uuid.Nil {
		return SaleLine{}, shared.NewInvalidInputError("Product ID cannot be empty")
	}
	if quantity <= 0 {
		return SaleLine{}, shared.NewInvalidInputError("Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return SaleLine{}, shared.NewInvalidInputError("Unit price cannot be negative")
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(hundred) {
		return SaleLine{}, shared.NewInvalidInputError("VAT rate must be between 0 and 100")
	}
	return SaleLine{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductSKU:  sku,
		ProductName: name,
		Unit:        unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		VATRate:     vatRate,
		CostPrice:   decimal.Zero,
	}, nil
}

// Amount is quantity × unit price × (1 + VAT%)
func (l SaleLine) Amount() decimal.Decimal {
	net := decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice)
	return net.Add(net.Mul(l.VATRate).Div(hundred)).Round(2)
}

// copyLine duplicates a line under a fresh ID
func (l SaleLine) copyLine() SaleLine {
	l.ID = uuid.New()
	return l
}

// PurchaseLine is a product line of a purchase
type PurchaseLine struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductSKU  string
	ProductName string
	Unit        string
	Quantity    int64
	CostPrice   decimal.Decimal
}

// NewPurchaseLine creates a validated purchase line
func NewPurchaseLine(productID uuid.UUID, sku, name, unit string, quantity int64, costPrice decimal.Decimal) (PurchaseLine, error) {
	if productID == uuid.Nil {
		return PurchaseLine{}, shared.NewInvalidInputError("Product ID cannot be empty")
	}
	if quantity <= 0 {
		return PurchaseLine{}, shared.NewInvalidInputError("Quantity must be positive")
	}
	if costPrice.IsNegative() {
		return PurchaseLine{}, shared.NewInvalidInputError("Cost price cannot be negative")
	}
	return PurchaseLine{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductSKU:  sku,
		ProductName: name,
		Unit:        unit,
		Quantity:    quantity,
		CostPrice:   costPrice,
	}, nil
}

// Amount is quantity × cost price
func (l PurchaseLine) Amount() decimal.Decimal {
	return decimal.NewFromInt(l.Quantity).Mul(l.CostPrice)
}

func sumSaleLines(lines []SaleLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}

func sumPurchaseLines(lines []PurchaseLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount())
	}
	return total
}

// paymentStatus names where paid stands against total
type paymentStatus int

const (
	nothingPaid paymentStatus = iota
	partlyPaid
	fullyPaid
)

func classifyPayment(paid, total decimal.Decimal) paymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return fullyPaid
	case paid.IsPositive():
		return partlyPaid
	}
	return nothingPaid
}

func checkPayment(paid, total decimal.Decimal, document string) error {
	if paid.IsNegative() {
		return shared.NewInvalidInputError("Paid amount cannot be negative")
	}
	if paid.GreaterThan(total) {
		return newOverpaymentError(document, paid, total)
	}
	return nil
}

func newOverpaymentError(document string, amount, outstanding decimal.Decimal) *shared.DomainError {
	return shared.NewDomainError(shared.CodeOverpayment,
		"payment of "+amount.String()+" exceeds outstanding "+outstanding.String()+" on "+document)
}
