package trade

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeQuote    = "Quote"
	AggregateTypeOrder    = "Order"
	AggregateTypeInvoice  = "Invoice"
	AggregateTypePurchase = "Purchase"
)

// Event type constants
const (
	EventTypeQuoteCreated            = "QuoteCreated"
	EventTypeQuoteConverted          = "QuoteConverted"
	EventTypeOrderCreated            = "OrderCreated"
	EventTypeOrderCompleted          = "OrderCompleted"
	EventTypeInvoiceCreated          = "InvoiceCreated"
	EventTypeInvoicePaymentRecorded  = "InvoicePaymentRecorded"
	EventTypeInvoiceCancelled        = "InvoiceCancelled"
	EventTypePurchaseCreated         = "PurchaseCreated"
	EventTypePurchasePaymentRecorded = "PurchasePaymentRecorded"
	EventTypePurchaseReturned        = "PurchaseReturned"
)

// DocumentEvent is raised on a lifecycle step of a commerce document
type DocumentEvent struct {
	shared.BaseDomainEvent
	DocumentNumber string          `json:"document_number"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// NewDocumentEvent creates a new DocumentEvent
func NewDocumentEvent(eventType, aggType string, id, tenantID uuid.UUID, number string, total decimal.Decimal) *DocumentEvent {
	return &DocumentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, aggType, id, tenantID),
		DocumentNumber:  number,
		TotalAmount:     total,
	}
}

// PaymentRecordedEvent is raised when money is applied to an invoice or purchase
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	DocumentNumber string          `json:"document_number"`
	Amount         decimal.Decimal `json:"amount"`
	Outstanding    decimal.Decimal `json:"outstanding"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(eventType, aggType string, id, tenantID uuid.UUID, number string, amount, outstanding decimal.Decimal) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, aggType, id, tenantID),
		DocumentNumber:  number,
		Amount:          amount,
		Outstanding:     outstanding,
	}
}
