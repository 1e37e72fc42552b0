package models

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleLineColumns holds the priced-line columns shared by quote, order and invoice lines
type SaleLineColumns struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LineNo      int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductSKU  string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Unit        string          `gorm:"type:varchar(20)"`
	Quantity    int64           `gorm:"not null;check:quantity > 0"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	VATRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

func saleLineColumns(l trade.SaleLine, lineNo int) SaleLineColumns {
	return SaleLineColumns{
		ID:          l.ID,
		LineNo:      lineNo,
		ProductID:   l.ProductID,
		ProductSKU:  l.ProductSKU,
		ProductName: l.ProductName,
		Unit:        l.Unit,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		VATRate:     l.VATRate,
		CostPrice:   l.CostPrice,
	}
}

func (c SaleLineColumns) toDomain() trade.SaleLine {
	return trade.SaleLine{
		ID:          c.ID,
		ProductID:   c.ProductID,
		ProductSKU:  c.ProductSKU,
		ProductName: c.ProductName,
		Unit:        c.Unit,
		Quantity:    c.Quantity,
		UnitPrice:   c.UnitPrice,
		VATRate:     c.VATRate,
		CostPrice:   c.CostPrice,
	}
}

// QuoteModel is the persistence model for a quote header
type QuoteModel struct {
	AggregateModel
	TenantID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_quote_tenant_number,priority:1"`
	DocumentNumber   string           `gorm:"type:varchar(30);not null;uniqueIndex:idx_quote_tenant_number,priority:2"`
	CustomerID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerName     string           `gorm:"type:varchar(200);not null"`
	Status           string           `gorm:"type:varchar(20);not null;default:'NEW'"`
	ValidUntil       *time.Time       `gorm:""`
	Note             string           `gorm:"type:varchar(500)"`
	TotalAmount      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	ConvertedOrderID *uuid.UUID       `gorm:"type:uuid"`
	ConvertedAt      *time.Time       `gorm:""`
	Lines            []QuoteLineModel `gorm:"foreignKey:QuoteID;references:ID"`
}

// TableName returns the table name for GORM
func (QuoteModel) TableName() string {
	return "quotes"
}

// QuoteLineModel is one line of a quote
type QuoteLineModel struct {
	SaleLineColumns
	QuoteID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (QuoteLineModel) TableName() string {
	return "quote_lines"
}

// ToDomain converts the persistence model to a domain Quote
func (m *QuoteModel) ToDomain() *trade.Quote {
	q := &trade.Quote{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		QuoteNumber:         m.DocumentNumber,
		CustomerID:          m.CustomerID,
		CustomerName:        m.CustomerName,
		Status:              trade.QuoteStatus(m.Status),
		ValidUntil:          m.ValidUntil,
		Note:                m.Note,
		TotalAmount:         m.TotalAmount,
		ConvertedOrderID:    m.ConvertedOrderID,
		ConvertedAt:         m.ConvertedAt,
		Lines:               make([]trade.SaleLine, len(m.Lines)),
	}
	for i, l := range m.Lines {
		q.Lines[i] = l.toDomain()
	}
	return q
}

// QuoteModelFromDomain creates a persistence model, lines included
func QuoteModelFromDomain(q *trade.Quote) *QuoteModel {
	m := &QuoteModel{
		TenantID:         q.TenantID,
		DocumentNumber:   q.QuoteNumber,
		CustomerID:       q.CustomerID,
		CustomerName:     q.CustomerName,
		Status:           string(q.Status),
		ValidUntil:       q.ValidUntil,
		Note:             q.Note,
		TotalAmount:      q.TotalAmount,
		ConvertedOrderID: q.ConvertedOrderID,
		ConvertedAt:      q.ConvertedAt,
		Lines:            make([]QuoteLineModel, len(q.Lines)),
	}
	m.FromDomainAggregate(q.TenantAggregateRoot)
	for i, l := range q.Lines {
		m.Lines[i] = QuoteLineModel{SaleLineColumns: saleLineColumns(l, i+1), QuoteID: q.ID}
	}
	return m
}

// OrderModel is the persistence model for an order header
type OrderModel struct {
	AggregateModel
	TenantID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_order_tenant_number,priority:1"`
	DocumentNumber string           `gorm:"type:varchar(30);not null;uniqueIndex:idx_order_tenant_number,priority:2"`
	CustomerID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerName   string           `gorm:"type:varchar(200);not null"`
	QuoteID        *uuid.UUID       `gorm:"type:uuid;index"`
	Status         string           `gorm:"type:varchar(20);not null;default:'NEW'"`
	Note           string           `gorm:"type:varchar(500)"`
	TotalAmount    decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount     decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	InvoiceID      *uuid.UUID       `gorm:"type:uuid"`
	CompletedAt    *time.Time       `gorm:""`
	Lines          []OrderLineModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is one line of an order
type OrderLineModel struct {
	SaleLineColumns
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// ToDomain converts the persistence model to a domain Order
func (m *OrderModel) ToDomain() *trade.Order {
	o := &trade.Order{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		OrderNumber:         m.DocumentNumber,
		CustomerID:          m.CustomerID,
		CustomerName:        m.CustomerName,
		QuoteID:             m.QuoteID,
		Status:              trade.OrderStatus(m.Status),
		Note:                m.Note,
		TotalAmount:         m.TotalAmount,
		PaidAmount:          m.PaidAmount,
		InvoiceID:           m.InvoiceID,
		CompletedAt:         m.CompletedAt,
		Lines:               make([]trade.SaleLine, len(m.Lines)),
	}
	for i, l := range m.Lines {
		o.Lines[i] = l.toDomain()
	}
	return o
}

// OrderModelFromDomain creates a persistence model, lines included
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{
		TenantID:       o.TenantID,
		DocumentNumber: o.OrderNumber,
		CustomerID:     o.CustomerID,
		CustomerName:   o.CustomerName,
		QuoteID:        o.QuoteID,
		Status:         string(o.Status),
		Note:           o.Note,
		TotalAmount:    o.TotalAmount,
		PaidAmount:     o.PaidAmount,
		InvoiceID:      o.InvoiceID,
		CompletedAt:    o.CompletedAt,
		Lines:          make([]OrderLineModel, len(o.Lines)),
	}
	m.FromDomainAggregate(o.TenantAggregateRoot)
	for i, l := range o.Lines {
		m.Lines[i] = OrderLineModel{SaleLineColumns: saleLineColumns(l, i+1), OrderID: o.ID}
	}
	return m
}

// DeliveryColumns are the optional shipping columns of an invoice
type DeliveryColumns struct {
	HasDelivery   bool            `gorm:"not null;default:false"`
	ReceiverName  string          `gorm:"type:varchar(200)"`
	ReceiverPhone string          `gorm:"type:varchar(30)"`
	Address       string          `gorm:"type:varchar(300)"`
	Shipper       string          `gorm:"type:varchar(100)"`
	ShipFee       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status        string          `gorm:"type:varchar(20)"`
}

// InvoiceModel is the persistence model for an invoice header
type InvoiceModel struct {
	AggregateModel
	TenantID       uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_invoice_tenant_number,priority:1;index:idx_invoice_tenant_customer,priority:1"`
	DocumentNumber string             `gorm:"type:varchar(30);not null;uniqueIndex:idx_invoice_tenant_number,priority:2"`
	CustomerID     *uuid.UUID         `gorm:"type:uuid;index:idx_invoice_tenant_customer,priority:2"`
	CustomerName   string             `gorm:"type:varchar(200);not null"`
	OrderID        *uuid.UUID         `gorm:"type:uuid;index"`
	Status         string             `gorm:"type:varchar(20);not null;index"`
	InvoiceDate    time.Time          `gorm:"not null"`
	DueDate        *time.Time         `gorm:"index"`
	Note           string             `gorm:"type:varchar(500)"`
	SubTotal       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	ShipFee        decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount    decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount     decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0;check:chk_invoice_paid,paid_amount <= total_amount"`
	Delivery       DeliveryColumns    `gorm:"embedded;embeddedPrefix:delivery_"`
	CancelReason   string             `gorm:"type:varchar(500)"`
	CancelledAt    *time.Time         `gorm:""`
	Lines          []InvoiceLineModel `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceLineModel is one line of an invoice
type InvoiceLineModel struct {
	SaleLineColumns
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (InvoiceLineModel) TableName() string {
	return "invoice_lines"
}

// ToDomain converts the persistence model to a domain Invoice
func (m *InvoiceModel) ToDomain() *trade.Invoice {
	inv := &trade.Invoice{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		InvoiceNumber:       m.DocumentNumber,
		CustomerID:          m.CustomerID,
		CustomerName:        m.CustomerName,
		OrderID:             m.OrderID,
		Status:              trade.InvoiceStatus(m.Status),
		InvoiceDate:         m.InvoiceDate,
		DueDate:             m.DueDate,
		Note:                m.Note,
		SubTotal:            m.SubTotal,
		ShipFee:             m.ShipFee,
		TotalAmount:         m.TotalAmount,
		PaidAmount:          m.PaidAmount,
		CancelReason:        m.CancelReason,
		CancelledAt:         m.CancelledAt,
		Lines:               make([]trade.SaleLine, len(m.Lines)),
	}
	if m.Delivery.HasDelivery {
		inv.Delivery = &trade.Delivery{
			ReceiverName:  m.Delivery.ReceiverName,
			ReceiverPhone: m.Delivery.ReceiverPhone,
			Address:       m.Delivery.Address,
			Shipper:       m.Delivery.Shipper,
			ShipFee:       m.Delivery.ShipFee,
			Status:        trade.DeliveryStatus(m.Delivery.Status),
		}
	}
	for i, l := range m.Lines {
		inv.Lines[i] = l.toDomain()
	}
	return inv
}

// InvoiceModelFromDomain creates a persistence model, lines included
func InvoiceModelFromDomain(inv *trade.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		TenantID:       inv.TenantID,
		DocumentNumber: inv.InvoiceNumber,
		CustomerID:     inv.CustomerID,
		CustomerName:   inv.CustomerName,
		OrderID:        inv.OrderID,
		Status:         string(inv.Status),
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
		Note:           inv.Note,
		SubTotal:       inv.SubTotal,
		ShipFee:        inv.ShipFee,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     inv.PaidAmount,
		CancelReason:   inv.CancelReason,
		CancelledAt:    inv.CancelledAt,
		Delivery:       DeliveryColumns{ShipFee: decimal.Zero},
		Lines:          make([]InvoiceLineModel, len(inv.Lines)),
	}
	if d := inv.Delivery; d != nil {
		m.Delivery = DeliveryColumns{
			HasDelivery:   true,
			ReceiverName:  d.ReceiverName,
			ReceiverPhone: d.ReceiverPhone,
			Address:       d.Address,
			Shipper:       d.Shipper,
			ShipFee:       d.ShipFee,
			Status:        string(d.Status),
		}
	}
	m.FromDomainAggregate(inv.TenantAggregateRoot)
	for i, l := range inv.Lines {
		m.Lines[i] = InvoiceLineModel{SaleLineColumns: saleLineColumns(l, i+1), InvoiceID: inv.ID}
	}
	return m
}

// PurchaseModel is the persistence model for a purchase header
type PurchaseModel struct {
	AggregateModel
	TenantID       uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_tenant_number,priority:1;index:idx_purchase_tenant_supplier,priority:1"`
	DocumentNumber string              `gorm:"type:varchar(30);not null;uniqueIndex:idx_purchase_tenant_number,priority:2"`
	SupplierID     uuid.UUID           `gorm:"type:uuid;not null;index:idx_purchase_tenant_supplier,priority:2"`
	SupplierName   string              `gorm:"type:varchar(200);not null"`
	Status         string              `gorm:"type:varchar(20);not null"`
	PurchaseDate   time.Time           `gorm:"not null"`
	Note           string              `gorm:"type:varchar(500)"`
	TotalAmount    decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount     decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0;check:chk_purchase_paid,paid_amount <= total_amount"`
	ReturnedAt     *time.Time          `gorm:""`
	Lines          []PurchaseLineModel `gorm:"foreignKey:PurchaseID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseLineModel is one received line of a purchase
type PurchaseLineModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PurchaseID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo      int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductSKU  string          `gorm:"type:varchar(50);not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Unit        string          `gorm:"type:varchar(20)"`
	Quantity    int64           `gorm:"not null;check:quantity > 0"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PurchaseLineModel) TableName() string {
	return "purchase_lines"
}

// ToDomain converts the persistence model to a domain Purchase
func (m *PurchaseModel) ToDomain() *trade.Purchase {
	p := &trade.Purchase{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		PurchaseNumber:      m.DocumentNumber,
		SupplierID:          m.SupplierID,
		SupplierName:        m.SupplierName,
		Status:              trade.PurchaseStatus(m.Status),
		PurchaseDate:        m.PurchaseDate,
		Note:                m.Note,
		TotalAmount:         m.TotalAmount,
		PaidAmount:          m.PaidAmount,
		ReturnedAt:          m.ReturnedAt,
		Lines:               make([]trade.PurchaseLine, len(m.Lines)),
	}
	for i, l := range m.Lines {
		p.Lines[i] = trade.PurchaseLine{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductSKU:  l.ProductSKU,
			ProductName: l.ProductName,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			CostPrice:   l.CostPrice,
		}
	}
	return p
}

// PurchaseModelFromDomain creates a persistence model, lines included
func PurchaseModelFromDomain(p *trade.Purchase) *PurchaseModel {
	m := &PurchaseModel{
		TenantID:       p.TenantID,
		DocumentNumber: p.PurchaseNumber,
		SupplierID:     p.SupplierID,
		SupplierName:   p.SupplierName,
		Status:         string(p.Status),
		PurchaseDate:   p.PurchaseDate,
		Note:           p.Note,
		TotalAmount:    p.TotalAmount,
		PaidAmount:     p.PaidAmount,
		ReturnedAt:     p.ReturnedAt,
		Lines:          make([]PurchaseLineModel, len(p.Lines)),
	}
	m.FromDomainAggregate(p.TenantAggregateRoot)
	for i, l := range p.Lines {
		m.Lines[i] = PurchaseLineModel{
			ID:          l.ID,
			PurchaseID:  p.ID,
			LineNo:      i + 1,
			ProductID:   l.ProductID,
			ProductSKU:  l.ProductSKU,
			ProductName: l.ProductName,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			CostPrice:   l.CostPrice,
		}
	}
	return m
}
