package catalog

import (
	"strings"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalog.
// Stock is the on-hand quantity; it is only changed through AdjustStock,
// which the stock ledger calls together with writing a history entry.
type Product struct {
	shared.TenantAggregateRoot
	SKU        string
	Name       string
	SearchName string
	Category   string
	Unit       string
	SellPrice  decimal.Decimal
	CostPrice  decimal.Decimal
	VATRate    decimal.Decimal // percent, e.g. 10 for 10%
	Stock      int64
}

// NewProduct creates a new product with zero stock
func NewProduct(tenantID uuid.UUID, sku, name, unit string) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateUnit(unit); err != nil {
		return nil, err
	}

	product := &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 strings.ToUpper(strings.TrimSpace(sku)),
		Name:                strings.TrimSpace(name),
		SearchName:          NormalizeSearchText(name),
		Unit:                unit,
		SellPrice:           decimal.Zero,
		CostPrice:           decimal.Zero,
		VATRate:             decimal.Zero,
	}

	product.AddDomainEvent(newProductEvent(EventTypeProductCreated, product))

	return product, nil
}

// Update updates the product's descriptive fields
func (p *Product) Update(name, category, unit string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if err := validateUnit(unit); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.SearchName = NormalizeSearchText(name)
	p.Category = category
	p.Unit = unit
	p.IncrementVersion()

	p.AddDomainEvent(newProductEvent(EventTypeProductUpdated, p))

	return nil
}

// SetPrices sets the selling and cost prices
func (p *Product) SetPrices(sellPrice, costPrice decimal.Decimal) error {
	if sellPrice.IsNegative() {
		return shared.NewInvalidInputError("Sell price cannot be negative")
	}
	if costPrice.IsNegative() {
		return shared.NewInvalidInputError("Cost price cannot be negative")
	}
	p.SellPrice = sellPrice
	p.CostPrice = costPrice
	p.Touch()
	return nil
}

// UpdateCostPrice records the latest purchase cost of the product
func (p *Product) UpdateCostPrice(costPrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return shared.NewInvalidInputError("Cost price cannot be negative")
	}
	p.CostPrice = costPrice
	p.Touch()
	return nil
}

// SetVATRate sets the VAT percentage applied on sale
func (p *Product) SetVATRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewInvalidInputError("VAT rate must be between 0 and 100")
	}
	p.VATRate = rate
	p.Touch()
	return nil
}

// AdjustStock applies a signed delta to the on-hand quantity and returns the new balance.
// A decrement below zero is rejected with an InsufficientStockError and leaves the product unchanged.
func (p *Product) AdjustStock(delta int64) (int64, error) {
	if delta < 0 && p.Stock+delta < 0 {
		return p.Stock, shared.NewInsufficientStockError(p.ID, p.Name, p.Stock, -delta)
	}
	p.Stock += delta
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return p.Stock, nil
}

// HasStock reports whether qty units are on hand
func (p *Product) HasStock(qty int64) bool {
	return p.Stock >= qty
}

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewInvalidInputError("Product SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewInvalidInputError("Product SKU cannot exceed 50 characters")
	}
	return nil
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewInvalidInputError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewInvalidInputError("Product name cannot exceed 200 characters")
	}
	return nil
}

func validateUnit(unit string) error {
	if strings.TrimSpace(unit) == "" {
		return shared.NewInvalidInputError("Product unit cannot be empty")
	}
	if len(unit) > 20 {
		return shared.NewInvalidInputError("Product unit cannot exceed 20 characters")
	}
	return nil
}
