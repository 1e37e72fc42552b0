package trade

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "UNPAID"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusOverdue       InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartiallyPaid, InvoiceStatusPaid,
		InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// DeliveryStatus tracks shipment of an invoice
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusShipping  DeliveryStatus = "SHIPPING"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
)

// Delivery is the optional shipping sub-document of an invoice
type Delivery struct {
	ReceiverName  string
	ReceiverPhone string
	Address       string
	Shipper       string
	ShipFee       decimal.Decimal
	Status        DeliveryStatus
}

// NewDelivery creates a pending delivery
func NewDelivery(receiverName, receiverPhone, address, shipper string, shipFee decimal.Decimal) (*Delivery, error) {
	if receiverName == "" || address == "" {
		return nil, shared.NewInvalidInputError("Delivery requires receiver name and address")
	}
	if shipFee.IsNegative() {
		return nil, shared.NewInvalidInputError("Ship fee cannot be negative")
	}
	return &Delivery{
		ReceiverName:  receiverName,
		ReceiverPhone: receiverPhone,
		Address:       address,
		Shipper:       shipper,
		ShipFee:       shipFee,
		Status:        DeliveryStatusPending,
	}, nil
}

// Invoice is a completed sale. TotalAmount includes the ship fee when a delivery is attached.
type Invoice struct {
	shared.TenantAggregateRoot
	InvoiceNumber string
	CustomerID    *uuid.UUID
	CustomerName  string
	OrderID       *uuid.UUID
	Status        InvoiceStatus
	InvoiceDate   time.Time
	DueDate       *time.Time
	Note          string
	Lines         []SaleLine
	SubTotal      decimal.Decimal
	ShipFee       decimal.Decimal
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	Delivery      *Delivery
	CancelReason  string
	CancelledAt   *time.Time
}

// InvoiceParams groups the inputs of NewInvoice
type InvoiceParams struct {
	Number       string
	CustomerID   *uuid.UUID
	CustomerName string
	OrderID      *uuid.UUID
	Lines        []SaleLine
	Delivery     *Delivery
	PaidAmount   decimal.Decimal
	DueDate      *time.Time
	Note         string
}

// NewInvoice creates an invoice whose status follows from the paid amount
func NewInvoice(tenantID uuid.UUID, p InvoiceParams) (*Invoice, error) {
	if p.Number == "" {
		return nil, shared.NewInvalidInputError("Invoice number cannot be empty")
	}
	if len(p.Lines) == 0 {
		return nil, shared.NewInvalidInputError("Invoice must have at least one line")
	}

	subTotal := sumSaleLines(p.Lines)
	shipFee := decimal.Zero
	if p.Delivery != nil {
		shipFee = p.Delivery.ShipFee
	}
	total := subTotal.Add(shipFee)

	if err := checkPayment(p.PaidAmount, total, "invoice "+p.Number); err != nil {
		return nil, err
	}
	if p.CustomerID == nil && p.PaidAmount.LessThan(total) {
		return nil, shared.NewInvalidInputError("Walk-in sale must be paid in full")
	}

	inv := &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		InvoiceNumber:       p.Number,
		CustomerID:          p.CustomerID,
		CustomerName:        p.CustomerName,
		OrderID:             p.OrderID,
		InvoiceDate:         time.Now(),
		DueDate:             p.DueDate,
		Note:                p.Note,
		Lines:               p.Lines,
		SubTotal:            subTotal,
		ShipFee:             shipFee,
		TotalAmount:         total,
		PaidAmount:          p.PaidAmount,
		Delivery:            p.Delivery,
	}
	inv.Status = inv.statusFromPayment()
	inv.AddDomainEvent(NewDocumentEvent(EventTypeInvoiceCreated, AggregateTypeInvoice, inv.ID, inv.TenantID, inv.InvoiceNumber, inv.TotalAmount))
	return inv, nil
}

// Outstanding is the unpaid remainder of the invoice
func (i *Invoice) Outstanding() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// IsCancelled reports whether the invoice was returned
func (i *Invoice) IsCancelled() bool {
	return i.Status == InvoiceStatusCancelled
}

// HasCustomer reports whether the sale is tied to a customer account
func (i *Invoice) HasCustomer() bool {
	return i.CustomerID != nil && *i.CustomerID != uuid.Nil
}

// RecordPayment applies a payment against the outstanding amount
func (i *Invoice) RecordPayment(amount decimal.Decimal) error {
	if i.IsCancelled() {
		return shared.NewInvalidTransitionError("invoice "+i.InvoiceNumber, string(i.Status), "record payment on")
	}
	if !amount.IsPositive() {
		return shared.NewInvalidInputError("Payment amount must be positive")
	}
	if amount.GreaterThan(i.Outstanding()) {
		return newOverpaymentError("invoice "+i.InvoiceNumber, amount, i.Outstanding())
	}
	i.PaidAmount = i.PaidAmount.Add(amount)
	if i.PaidAmount.GreaterThanOrEqual(i.TotalAmount) {
		i.Status = InvoiceStatusPaid
	} else {
		i.Status = InvoiceStatusPartiallyPaid
	}
	i.IncrementVersion()
	i.AddDomainEvent(NewPaymentRecordedEvent(EventTypeInvoicePaymentRecorded, AggregateTypeInvoice, i.ID, i.TenantID, i.InvoiceNumber, amount, i.Outstanding()))
	return nil
}

// Cancel soft-cancels the invoice. Reversal of stock, debt and cash is the caller's job
// and must happen in the same transaction.
func (i *Invoice) Cancel(reason string) error {
	if i.IsCancelled() {
		return shared.NewInvalidTransitionError("invoice "+i.InvoiceNumber, string(i.Status), "cancel")
	}
	now := time.Now()
	i.Status = InvoiceStatusCancelled
	i.CancelReason = reason
	i.CancelledAt = &now
	i.IncrementVersion()
	i.AddDomainEvent(NewDocumentEvent(EventTypeInvoiceCancelled, AggregateTypeInvoice, i.ID, i.TenantID, i.InvoiceNumber, i.TotalAmount))
	return nil
}

// MarkOverdue flips an open invoice past its due date to OVERDUE.
// It returns false when nothing changed.
func (i *Invoice) MarkOverdue(asOf time.Time) bool {
	if i.DueDate == nil || !i.DueDate.Before(asOf) {
		return false
	}
	if i.Status != InvoiceStatusUnpaid && i.Status != InvoiceStatusPartiallyPaid {
		return false
	}
	i.Status = InvoiceStatusOverdue
	i.IncrementVersion()
	return true
}

func (i *Invoice) statusFromPayment() InvoiceStatus {
	switch classifyPayment(i.PaidAmount, i.TotalAmount) {
	case fullyPaid:
		return InvoiceStatusPaid
	case partlyPaid:
		return InvoiceStatusPartiallyPaid
	}
	return InvoiceStatusUnpaid
}
