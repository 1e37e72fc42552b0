package partner

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeCustomer = "Customer"
	AggregateTypeSupplier = "Supplier"
)

// Event type constants
const (
	EventTypePartyCreated = "PartyCreated"
	EventTypeDebtAdjusted = "DebtAdjusted"
)

// PartyCreatedEvent is raised when a customer or supplier is registered
type PartyCreatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewPartyCreatedEvent creates a new PartyCreatedEvent
func NewPartyCreatedEvent(aggType string, id, tenantID uuid.UUID, code, name string) *PartyCreatedEvent {
	return &PartyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartyCreated, aggType, id, tenantID),
		Code:            code,
		Name:            name,
	}
}

// DebtAdjustedEvent is raised when a party's balance moves
type DebtAdjustedEvent struct {
	shared.BaseDomainEvent
	Delta        decimal.Decimal `json:"delta"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// NewDebtAdjustedEvent creates a new DebtAdjustedEvent
func NewDebtAdjustedEvent(aggType string, id, tenantID uuid.UUID, delta, balance decimal.Decimal) *DebtAdjustedEvent {
	return &DebtAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDebtAdjusted, aggType, id, tenantID),
		Delta:           delta,
		BalanceAfter:    balance,
	}
}
