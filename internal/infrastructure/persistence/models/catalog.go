package models

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentSequenceModel is one counter row of the sequence allocator
type DocumentSequenceModel struct {
	TenantID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocType   string    `gorm:"type:varchar(30);primaryKey"`
	LastValue int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DocumentSequenceModel) TableName() string {
	return "document_sequences"
}

// ProductModel is the persistence model for the Product domain entity
type ProductModel struct {
	AggregateModel
	TenantID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_product_tenant_sku,priority:1"`
	SKU        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_tenant_sku,priority:2"`
	Name       string          `gorm:"type:varchar(200);not null"`
	SearchName string          `gorm:"type:varchar(200);not null;index"`
	Category   string          `gorm:"type:varchar(100)"`
	Unit       string          `gorm:"type:varchar(20);not null"`
	SellPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	VATRate    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Stock      int64           `gorm:"not null;default:0;check:chk_product_stock,stock >= 0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		SKU:                 m.SKU,
		Name:                m.Name,
		SearchName:          m.SearchName,
		Category:            m.Category,
		Unit:                m.Unit,
		SellPrice:           m.SellPrice,
		CostPrice:           m.CostPrice,
		VATRate:             m.VATRate,
		Stock:               m.Stock,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregate(p.TenantAggregateRoot)
	m.TenantID = p.TenantID
	m.SKU = p.SKU
	m.Name = p.Name
	m.SearchName = p.SearchName
	m.Category = p.Category
	m.Unit = p.Unit
	m.SellPrice = p.SellPrice
	m.CostPrice = p.CostPrice
	m.VATRate = p.VATRate
	m.Stock = p.Stock
}

// ProductModelFromDomain creates a persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
