package trade

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteStatus represents the status of a quote
type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "NEW"
	QuoteStatusSent      QuoteStatus = "SENT"
	QuoteStatusConverted QuoteStatus = "CONVERTED"
)

// IsValid checks if the status is a valid QuoteStatus
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusSent, QuoteStatusConverted:
		return true
	}
	return false
}

// String returns the string representation of QuoteStatus
func (s QuoteStatus) String() string {
	return string(s)
}

// Quote is a priced offer to a customer. It has no stock or debt effect.
type Quote struct {
	shared.TenantAggregateRoot
	QuoteNumber      string
	CustomerID       uuid.UUID
	CustomerName     string
	Status           QuoteStatus
	ValidUntil       *time.Time
	Note             string
	Lines            []SaleLine
	TotalAmount      decimal.Decimal
	ConvertedOrderID *uuid.UUID
	ConvertedAt      *time.Time
}

// NewQuote creates a NEW quote
func NewQuote(tenantID uuid.UUID, number string, customerID uuid.UUID, customerName string, lines []SaleLine, note string) (*Quote, error) {
	if number == "" {
		return nil, shared.NewInvalidInputError("Quote number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewInvalidInputError("Quote requires a customer")
	}
	if len(lines) == 0 {
		return nil, shared.NewInvalidInputError("Quote must have at least one line")
	}

	q := &Quote{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		QuoteNumber:         number,
		CustomerID:          customerID,
		CustomerName:        customerName,
		Status:              QuoteStatusNew,
		Note:                note,
		Lines:               lines,
		TotalAmount:         sumSaleLines(lines),
	}
	q.AddDomainEvent(NewDocumentEvent(EventTypeQuoteCreated, AggregateTypeQuote, q.ID, q.TenantID, q.QuoteNumber, q.TotalAmount))
	return q, nil
}

// MarkSent records that the quote was handed to the customer
func (q *Quote) MarkSent() error {
	if q.Status != QuoteStatusNew {
		return shared.NewInvalidTransitionError("quote "+q.QuoteNumber, string(q.Status), "send")
	}
	q.Status = QuoteStatusSent
	q.IncrementVersion()
	return nil
}

// EnsureConvertible rejects a quote that already produced an order
func (q *Quote) EnsureConvertible() error {
	if q.Status == QuoteStatusConverted {
		return shared.NewInvalidTransitionError("quote "+q.QuoteNumber, string(q.Status), "convert")
	}
	return nil
}

// MarkConverted links the quote to the order created from it
func (q *Quote) MarkConverted(orderID uuid.UUID) error {
	if err := q.EnsureConvertible(); err != nil {
		return err
	}
	now := time.Now()
	q.Status = QuoteStatusConverted
	q.ConvertedOrderID = &orderID
	q.ConvertedAt = &now
	q.IncrementVersion()
	q.AddDomainEvent(NewDocumentEvent(EventTypeQuoteConverted, AggregateTypeQuote, q.ID, q.TenantID, q.QuoteNumber, q.TotalAmount))
	return nil
}

// CopyLines returns the quote lines under fresh IDs for a new document
func (q *Quote) CopyLines() []SaleLine {
	lines := make([]SaleLine, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = l.copyLine()
	}
	return lines
}
