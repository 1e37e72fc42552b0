package inventory

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeInventoryCheck = "InventoryCheck"
	AggregateTypeStock          = "Stock"
)

// Event type constants
const (
	EventTypeInventoryCheckCreated   = "InventoryCheckCreated"
	EventTypeInventoryCheckCompleted = "InventoryCheckCompleted"
	EventTypeStockChanged            = "StockChanged"
)

// InventoryCheckCreatedEvent is raised when a check is drafted
type InventoryCheckCreatedEvent struct {
	shared.BaseDomainEvent
	CheckNumber string `json:"check_number"`
}

// NewInventoryCheckCreatedEvent creates a new InventoryCheckCreatedEvent
func NewInventoryCheckCreatedEvent(c *InventoryCheck) *InventoryCheckCreatedEvent {
	return &InventoryCheckCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryCheckCreated, AggregateTypeInventoryCheck, c.ID, c.TenantID),
		CheckNumber:     c.CheckNumber,
	}
}

// InventoryCheckCompletedEvent is raised when counts are posted to stock
type InventoryCheckCompletedEvent struct {
	shared.BaseDomainEvent
	CheckNumber     string `json:"check_number"`
	AdjustedLines   int    `json:"adjusted_lines"`
	TotalDifference int64  `json:"total_difference"`
}

// NewInventoryCheckCompletedEvent creates a new InventoryCheckCompletedEvent
func NewInventoryCheckCompletedEvent(c *InventoryCheck) *InventoryCheckCompletedEvent {
	adj := c.Adjustments()
	var total int64
	for _, item := range adj {
		total += item.Difference()
	}
	return &InventoryCheckCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryCheckCompleted, AggregateTypeInventoryCheck, c.ID, c.TenantID),
		CheckNumber:     c.CheckNumber,
		AdjustedLines:   len(adj),
		TotalDifference: total,
	}
}

// StockChangedEvent is raised for every ledger entry
type StockChangedEvent struct {
	shared.BaseDomainEvent
	ProductID     uuid.UUID     `json:"product_id"`
	ChangeAmount  int64         `json:"change_amount"`
	BalanceAfter  int64         `json:"balance_after"`
	OperationType OperationType `json:"operation_type"`
	Reference     string        `json:"reference"`
}

// NewStockChangedEvent creates a StockChangedEvent from a ledger entry
func NewStockChangedEvent(e *StockHistoryEntry) *StockChangedEvent {
	return &StockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockChanged, AggregateTypeStock, e.ProductID, e.TenantID),
		ProductID:       e.ProductID,
		ChangeAmount:    e.ChangeAmount,
		BalanceAfter:    e.BalanceAfter,
		OperationType:   e.OperationType,
		Reference:       e.Reference,
	}
}
