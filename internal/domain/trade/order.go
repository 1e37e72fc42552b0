package trade

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a sales order
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	return s == OrderStatusNew || s == OrderStatusCompleted
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a confirmed customer order awaiting fulfilment.
// Stock and debt move only when it is converted to exactly one invoice.
type Order struct {
	shared.TenantAggregateRoot
	OrderNumber  string
	CustomerID   uuid.UUID
	CustomerName string
	QuoteID      *uuid.UUID
	Status       OrderStatus
	Note         string
	Lines        []SaleLine
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	InvoiceID    *uuid.UUID
	CompletedAt  *time.Time
}

// NewOrder creates a NEW order
func NewOrder(tenantID uuid.UUID, number string, customerID uuid.UUID, customerName string, lines []SaleLine, note string) (*Order, error) {
	if number == "" {
		return nil, shared.NewInvalidInputError("Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewInvalidInputError("Order requires a customer")
	}
	if len(lines) == 0 {
		return nil, shared.NewInvalidInputError("Order must have at least one line")
	}

	o := &Order{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		OrderNumber:         number,
		CustomerID:          customerID,
		CustomerName:        customerName,
		Status:              OrderStatusNew,
		Note:                note,
		Lines:               lines,
		TotalAmount:         sumSaleLines(lines),
		PaidAmount:          decimal.Zero,
	}
	o.AddDomainEvent(NewDocumentEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID, o.TenantID, o.OrderNumber, o.TotalAmount))
	return o, nil
}

// NewOrderFromQuote creates an order carrying a copy of the quote lines
func NewOrderFromQuote(number string, q *Quote) (*Order, error) {
	o, err := NewOrder(q.TenantID, number, q.CustomerID, q.CustomerName, q.CopyLines(), q.Note)
	if err != nil {
		return nil, err
	}
	quoteID := q.ID
	o.QuoteID = &quoteID
	return o, nil
}

// SetCostPrice snapshots a product's current cost onto every line for that product
func (o *Order) SetCostPrice(productID uuid.UUID, cost decimal.Decimal) {
	for i := range o.Lines {
		if o.Lines[i].ProductID == productID {
			o.Lines[i].CostPrice = cost
		}
	}
}

// EnsureConvertible rejects an order that already produced an invoice
func (o *Order) EnsureConvertible() error {
	if o.Status == OrderStatusCompleted {
		return shared.NewInvalidTransitionError("order "+o.OrderNumber, string(o.Status), "convert")
	}
	return nil
}

// Complete links the order to its invoice and records what was paid at conversion
func (o *Order) Complete(invoiceID uuid.UUID, paid decimal.Decimal) error {
	if err := o.EnsureConvertible(); err != nil {
		return err
	}
	if err := checkPayment(paid, o.TotalAmount, "order "+o.OrderNumber); err != nil {
		return err
	}
	now := time.Now()
	o.Status = OrderStatusCompleted
	o.InvoiceID = &invoiceID
	o.PaidAmount = paid
	o.CompletedAt = &now
	o.IncrementVersion()
	o.AddDomainEvent(NewDocumentEvent(EventTypeOrderCompleted, AggregateTypeOrder, o.ID, o.TenantID, o.OrderNumber, o.TotalAmount))
	return nil
}

// CopyLines returns the order lines under fresh IDs for the invoice
func (o *Order) CopyLines() []SaleLine {
	lines := make([]SaleLine, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = l.copyLine()
	}
	return lines
}
