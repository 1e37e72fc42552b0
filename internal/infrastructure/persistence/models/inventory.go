package models

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockHistoryModel is one append-only row of the stock ledger
type StockHistoryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID `gorm:"type:uuid;not null;index:idx_stock_history_product,priority:1;index:idx_stock_history_reference,priority:1"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index:idx_stock_history_product,priority:2"`
	ProductSKU    string    `gorm:"type:varchar(50);not null"`
	ProductName   string    `gorm:"type:varchar(200);not null"`
	ChangeAmount  int64     `gorm:"not null"`
	BalanceAfter  int64     `gorm:"not null"`
	OperationType string    `gorm:"type:varchar(20);not null"`
	Reference     string    `gorm:"type:varchar(50);index:idx_stock_history_reference,priority:2"`
	Note          string    `gorm:"type:varchar(500)"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockHistoryModel) TableName() string {
	return "stock_history"
}

// ToDomain converts the persistence model to a domain StockHistoryEntry
func (m *StockHistoryModel) ToDomain() *inventory.StockHistoryEntry {
	return &inventory.StockHistoryEntry{
		ID:            m.ID,
		TenantID:      m.TenantID,
		ProductID:     m.ProductID,
		ProductSKU:    m.ProductSKU,
		ProductName:   m.ProductName,
		ChangeAmount:  m.ChangeAmount,
		BalanceAfter:  m.BalanceAfter,
		OperationType: inventory.OperationType(m.OperationType),
		Reference:     m.Reference,
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
	}
}

// StockHistoryModelFromDomain creates a persistence model from a ledger entry
func StockHistoryModelFromDomain(e *inventory.StockHistoryEntry) *StockHistoryModel {
	return &StockHistoryModel{
		ID:            e.ID,
		TenantID:      e.TenantID,
		ProductID:     e.ProductID,
		ProductSKU:    e.ProductSKU,
		ProductName:   e.ProductName,
		ChangeAmount:  e.ChangeAmount,
		BalanceAfter:  e.BalanceAfter,
		OperationType: string(e.OperationType),
		Reference:     e.Reference,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
	}
}

// InventoryCheckModel is the persistence model for an inventory check header
type InventoryCheckModel struct {
	AggregateModel
	TenantID       uuid.UUID                 `gorm:"type:uuid;not null;uniqueIndex:idx_inventory_check_tenant_number,priority:1"`
	DocumentNumber string                    `gorm:"type:varchar(30);not null;uniqueIndex:idx_inventory_check_tenant_number,priority:2"`
	CheckDate      time.Time                 `gorm:"not null"`
	Status         string                    `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	Note           string                    `gorm:"type:varchar(500)"`
	CompletedAt    *time.Time                `gorm:""`
	Items          []InventoryCheckItemModel `gorm:"foreignKey:CheckID;references:ID"`
}

// TableName returns the table name for GORM
func (InventoryCheckModel) TableName() string {
	return "inventory_checks"
}

// InventoryCheckItemModel is one counted line of an inventory check
type InventoryCheckItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CheckID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	ProductSKU      string          `gorm:"type:varchar(50);not null"`
	ProductName     string          `gorm:"type:varchar(200);not null"`
	Unit            string          `gorm:"type:varchar(20)"`
	BookQuantity    int64           `gorm:"not null"`
	CountedQuantity int64           `gorm:"not null"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Remark          string          `gorm:"type:varchar(300)"`
}

// TableName returns the table name for GORM
func (InventoryCheckItemModel) TableName() string {
	return "inventory_check_items"
}

// ToDomain converts the persistence model to a domain InventoryCheck
func (m *InventoryCheckModel) ToDomain() *inventory.InventoryCheck {
	c := &inventory.InventoryCheck{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		CheckNumber:         m.DocumentNumber,
		CheckDate:           m.CheckDate,
		Status:              inventory.CheckStatus(m.Status),
		Note:                m.Note,
		CompletedAt:         m.CompletedAt,
		Items:               make([]inventory.CheckItem, len(m.Items)),
	}
	for i, item := range m.Items {
		c.Items[i] = inventory.CheckItem{
			ID:              item.ID,
			CheckID:         item.CheckID,
			ProductID:       item.ProductID,
			ProductSKU:      item.ProductSKU,
			ProductName:     item.ProductName,
			Unit:            item.Unit,
			BookQuantity:    item.BookQuantity,
			CountedQuantity: item.CountedQuantity,
			UnitCost:        item.UnitCost,
			Remark:          item.Remark,
		}
	}
	return c
}

// InventoryCheckModelFromDomain creates a persistence model, lines included
func InventoryCheckModelFromDomain(c *inventory.InventoryCheck) *InventoryCheckModel {
	m := &InventoryCheckModel{
		TenantID:       c.TenantID,
		DocumentNumber: c.CheckNumber,
		CheckDate:      c.CheckDate,
		Status:         string(c.Status),
		Note:           c.Note,
		CompletedAt:    c.CompletedAt,
		Items:          make([]InventoryCheckItemModel, len(c.Items)),
	}
	m.FromDomainAggregate(c.TenantAggregateRoot)
	for i, item := range c.Items {
		m.Items[i] = InventoryCheckItemModel{
			ID:              item.ID,
			CheckID:         c.ID,
			ProductID:       item.ProductID,
			ProductSKU:      item.ProductSKU,
			ProductName:     item.ProductName,
			Unit:            item.Unit,
			BookQuantity:    item.BookQuantity,
			CountedQuantity: item.CountedQuantity,
			UnitCost:        item.UnitCost,
			Remark:          item.Remark,
		}
	}
	return m
}
