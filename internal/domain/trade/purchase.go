package trade

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the status of a purchase
type PurchaseStatus string

const (
	PurchaseStatusDebt     PurchaseStatus = "DEBT"
	PurchaseStatusPaid     PurchaseStatus = "PAID"
	PurchaseStatusReturned PurchaseStatus = "RETURNED"
)

// IsValid checks if the status is a valid PurchaseStatus
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusDebt, PurchaseStatusPaid, PurchaseStatusReturned:
		return true
	}
	return false
}

// String returns the string representation of PurchaseStatus
func (s PurchaseStatus) String() string {
	return string(s)
}

// Purchase is goods received from a supplier
type Purchase struct {
	shared.TenantAggregateRoot
	PurchaseNumber string
	SupplierID     uuid.UUID
	SupplierName   string
	Status         PurchaseStatus
	PurchaseDate   time.Time
	Note           string
	Lines          []PurchaseLine
	TotalAmount    decimal.Decimal
	PaidAmount     decimal.Decimal
	ReturnedAt     *time.Time
}

// NewPurchase creates a purchase with status DEBT or PAID
func NewPurchase(tenantID uuid.UUID, number string, supplierID uuid.UUID, supplierName string, lines []PurchaseLine, paid decimal.Decimal, note string) (*Purchase, error) {
	if number == "" {
		return nil, shared.NewInvalidInputError("Purchase number cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewInvalidInputError("Purchase requires a supplier")
	}
	if len(lines) == 0 {
		return nil, shared.NewInvalidInputError("Purchase must have at least one line")
	}
	total := sumPurchaseLines(lines)
	if err := checkPayment(paid, total, "purchase "+number); err != nil {
		return nil, err
	}

	p := &Purchase{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PurchaseNumber:      number,
		SupplierID:          supplierID,
		SupplierName:        supplierName,
		PurchaseDate:        time.Now(),
		Note:                note,
		Lines:               lines,
		TotalAmount:         total,
		PaidAmount:          paid,
	}
	p.Status = p.statusFromPayment()
	p.AddDomainEvent(NewDocumentEvent(EventTypePurchaseCreated, AggregateTypePurchase, p.ID, p.TenantID, p.PurchaseNumber, p.TotalAmount))
	return p, nil
}

// Outstanding is what is still owed to the supplier for this purchase
func (p *Purchase) Outstanding() decimal.Decimal {
	return p.TotalAmount.Sub(p.PaidAmount)
}

// IsReturned reports whether the goods went back to the supplier
func (p *Purchase) IsReturned() bool {
	return p.Status == PurchaseStatusReturned
}

// RecordPayment pays down the outstanding amount
func (p *Purchase) RecordPayment(amount decimal.Decimal) error {
	if p.IsReturned() {
		return shared.NewInvalidTransitionError("purchase "+p.PurchaseNumber, string(p.Status), "record payment on")
	}
	if !amount.IsPositive() {
		return shared.NewInvalidInputError("Payment amount must be positive")
	}
	if amount.GreaterThan(p.Outstanding()) {
		return newOverpaymentError("purchase "+p.PurchaseNumber, amount, p.Outstanding())
	}
	p.PaidAmount = p.PaidAmount.Add(amount)
	p.Status = p.statusFromPayment()
	p.IncrementVersion()
	p.AddDomainEvent(NewPaymentRecordedEvent(EventTypePurchasePaymentRecorded, AggregateTypePurchase, p.ID, p.TenantID, p.PurchaseNumber, amount, p.Outstanding()))
	return nil
}

// Return marks the purchase RETURNED. Stock and debt reversal is the caller's job.
func (p *Purchase) Return() error {
	if p.IsReturned() {
		return shared.NewInvalidTransitionError("purchase "+p.PurchaseNumber, string(p.Status), "return")
	}
	now := time.Now()
	p.Status = PurchaseStatusReturned
	p.ReturnedAt = &now
	p.IncrementVersion()
	p.AddDomainEvent(NewDocumentEvent(EventTypePurchaseReturned, AggregateTypePurchase, p.ID, p.TenantID, p.PurchaseNumber, p.TotalAmount))
	return nil
}

func (p *Purchase) statusFromPayment() PurchaseStatus {
	if classifyPayment(p.PaidAmount, p.TotalAmount) == fullyPaid {
		return PurchaseStatusPaid
	}
	return PurchaseStatusDebt
}
