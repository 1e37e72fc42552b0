package inventory

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckStatus represents the status of an inventory check
type CheckStatus string

const (
	CheckStatusDraft     CheckStatus = "DRAFT"
	CheckStatusCompleted CheckStatus = "COMPLETED"
)

// IsValid checks if the status is a valid CheckStatus
func (s CheckStatus) IsValid() bool {
	return s == CheckStatusDraft || s == CheckStatusCompleted
}

// String returns the string representation of CheckStatus
func (s CheckStatus) String() string {
	return string(s)
}

// CheckItem is one counted product of an inventory check.
// BookQuantity and UnitCost are snapshots taken when the line was added.
type CheckItem struct {
	ID              uuid.UUID
	CheckID         uuid.UUID
	ProductID       uuid.UUID
	ProductSKU      string
	ProductName     string
	Unit            string
	BookQuantity    int64
	CountedQuantity int64
	UnitCost        decimal.Decimal
	Remark          string
}

// Difference returns counted minus book quantity
func (i *CheckItem) Difference() int64 {
	return i.CountedQuantity - i.BookQuantity
}

// DifferenceAmount values the difference at the snapshotted cost
func (i *CheckItem) DifferenceAmount() decimal.Decimal {
	return decimal.NewFromInt(i.Difference()).Mul(i.UnitCost)
}

// InventoryCheck reconciles physical counts against book stock.
// A DRAFT check is freely editable; completing it posts one MANUAL_ADJUST per
// differing line and is irreversible.
type InventoryCheck struct {
	shared.TenantAggregateRoot
	CheckNumber string
	CheckDate   time.Time
	Status      CheckStatus
	Note        string
	CompletedAt *time.Time
	Items       []CheckItem
}

// NewInventoryCheck creates a DRAFT inventory check
func NewInventoryCheck(tenantID uuid.UUID, checkNumber string, checkDate time.Time, note string) (*InventoryCheck, error) {
	if checkNumber == "" {
		return nil, shared.NewInvalidInputError("Check number cannot be empty")
	}
	if checkDate.IsZero() {
		checkDate = time.Now()
	}

	c := &InventoryCheck{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CheckNumber:         checkNumber,
		CheckDate:           checkDate,
		Status:              CheckStatusDraft,
		Note:                note,
		Items:               make([]CheckItem, 0),
	}

	c.AddDomainEvent(NewInventoryCheckCreatedEvent(c))

	return c, nil
}

// AddItem adds a product line with its book quantity snapshot
func (c *InventoryCheck) AddItem(productID uuid.UUID, sku, name, unit string, bookQty, countedQty int64, unitCost decimal.Decimal, remark string) error {
	if err := c.ensureDraft("edit"); err != nil {
		return err
	}
	if productID == uuid.Nil {
		return shared.NewInvalidInputError("Product ID cannot be empty")
	}
	if countedQty < 0 {
		return shared.NewInvalidInputError("Counted quantity cannot be negative")
	}
	for _, item := range c.Items {
		if item.ProductID == productID {
			return shared.NewInvalidInputError("Product already exists in inventory check")
		}
	}

	c.Items = append(c.Items, CheckItem{
		ID:              uuid.New(),
		CheckID:         c.ID,
		ProductID:       productID,
		ProductSKU:      sku,
		ProductName:     name,
		Unit:            unit,
		BookQuantity:    bookQty,
		CountedQuantity: countedQty,
		UnitCost:        unitCost,
		Remark:          remark,
	})
	c.IncrementVersion()
	return nil
}

// RecordCount updates the counted quantity of an existing line
func (c *InventoryCheck) RecordCount(productID uuid.UUID, countedQty int64, remark string) error {
	if err := c.ensureDraft("edit"); err != nil {
		return err
	}
	if countedQty < 0 {
		return shared.NewInvalidInputError("Counted quantity cannot be negative")
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].CountedQuantity = countedQty
			c.Items[i].Remark = remark
			c.IncrementVersion()
			return nil
		}
	}
	return shared.NewNotFoundError("inventory check line for product", productID)
}

// RemoveItem drops a product line
func (c *InventoryCheck) RemoveItem(productID uuid.UUID) error {
	if err := c.ensureDraft("edit"); err != nil {
		return err
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.IncrementVersion()
			return nil
		}
	}
	return shared.NewNotFoundError("inventory check line for product", productID)
}

// UpdateNote edits the free-text note
func (c *InventoryCheck) UpdateNote(note string) error {
	if err := c.ensureDraft("edit"); err != nil {
		return err
	}
	c.Note = note
	c.IncrementVersion()
	return nil
}

// Adjustments returns the lines whose count differs from book stock
func (c *InventoryCheck) Adjustments() []CheckItem {
	var diffs []CheckItem
	for _, item := range c.Items {
		if item.Difference() != 0 {
			diffs = append(diffs, item)
		}
	}
	return diffs
}

// Complete closes the check. Stock adjustments are posted by the caller in the same transaction.
func (c *InventoryCheck) Complete() error {
	if err := c.ensureDraft("complete"); err != nil {
		return err
	}
	if len(c.Items) == 0 {
		return shared.NewInvalidInputError("Cannot complete an inventory check without lines")
	}
	now := time.Now()
	c.Status = CheckStatusCompleted
	c.CompletedAt = &now
	c.IncrementVersion()

	c.AddDomainEvent(NewInventoryCheckCompletedEvent(c))
	return nil
}

// EnsureDeletable rejects deletion once the check has been applied to stock
func (c *InventoryCheck) EnsureDeletable() error {
	return c.ensureDraft("delete")
}

// IsDraft reports whether the check is still editable
func (c *InventoryCheck) IsDraft() bool {
	return c.Status == CheckStatusDraft
}

func (c *InventoryCheck) ensureDraft(action string) error {
	if c.Status != CheckStatusDraft {
		return shared.NewInvalidTransitionError("inventory check "+c.CheckNumber, string(c.Status), action)
	}
	return nil
}
