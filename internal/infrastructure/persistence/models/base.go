package models

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides the identity and timestamp columns of every table
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// AggregateModel provides the columns shared by tenant-scoped aggregates.
// TenantID is declared on each model so it can join that table's composite indexes.
type AggregateModel struct {
	BaseModel
	Version   int        `gorm:"not null;default:1"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
}

// FromDomainAggregate populates the model from a domain TenantAggregateRoot
func (m *AggregateModel) FromDomainAggregate(t shared.TenantAggregateRoot) {
	m.ID = t.ID
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
	m.Version = t.Version
	m.CreatedBy = t.CreatedBy
}

// ToAggregateRoot rebuilds the domain TenantAggregateRoot. The event list starts empty.
func (m *AggregateModel) ToAggregateRoot(tenantID uuid.UUID) shared.TenantAggregateRoot {
	return shared.TenantAggregateRoot{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		TenantID:  tenantID,
		CreatedBy: m.CreatedBy,
	}
}

// AllModels lists every persistence model, in dependency order, for AutoMigrate
func AllModels() []any {
	return []any{
		&DocumentSequenceModel{},
		&ProductModel{},
		&StockHistoryModel{},
		&CustomerModel{},
		&SupplierModel{},
		&CashFlowVoucherModel{},
		&QuoteModel{},
		&QuoteLineModel{},
		&OrderModel{},
		&OrderLineModel{},
		&InvoiceModel{},
		&InvoiceLineModel{},
		&PurchaseModel{},
		&PurchaseLineModel{},
		&InventoryCheckModel{},
		&InventoryCheckItemModel{},
	}
}
