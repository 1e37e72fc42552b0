package models

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContactColumns holds the columns shared by customers and suppliers.
// Code lives on each model so it can join the tenant unique index.
type ContactColumns struct {
	Name       string          `gorm:"type:varchar(200);not null"`
	SearchName string          `gorm:"type:varchar(200);not null;index"`
	Phone      string          `gorm:"type:varchar(30);index"`
	Email      string          `gorm:"type:varchar(100)"`
	Address    string          `gorm:"type:varchar(300)"`
	TaxCode    string          `gorm:"type:varchar(30)"`
	Note       string          `gorm:"type:varchar(500)"`
	Debt       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

func contactColumnsFromDomain(c partner.Contact, d partner.DebtBalance) ContactColumns {
	return ContactColumns{
		Name:       c.Name,
		SearchName: c.SearchName,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		TaxCode:    c.TaxCode,
		Note:       c.Note,
		Debt:       d.Debt,
	}
}

func (c ContactColumns) toDomain() (partner.Contact, partner.DebtBalance) {
	return partner.Contact{
		Name:       c.Name,
		SearchName: c.SearchName,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		TaxCode:    c.TaxCode,
		Note:       c.Note,
	}, partner.DebtBalance{Debt: c.Debt}
}

// CustomerModel is the persistence model for the Customer domain entity
type CustomerModel struct {
	AggregateModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customer_tenant_code,priority:1"`
	Code     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_tenant_code,priority:2"`
	ContactColumns
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	contact, debt := m.ContactColumns.toDomain()
	contact.Code = m.Code
	return &partner.Customer{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		Contact:             contact,
		DebtBalance:         debt,
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{
		TenantID:       c.TenantID,
		Code:           c.Code,
		ContactColumns: contactColumnsFromDomain(c.Contact, c.DebtBalance),
	}
	m.FromDomainAggregate(c.TenantAggregateRoot)
	return m
}

// SupplierModel is the persistence model for the Supplier domain entity
type SupplierModel struct {
	AggregateModel
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_supplier_tenant_code,priority:1"`
	Code     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_supplier_tenant_code,priority:2"`
	ContactColumns
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier
func (m *SupplierModel) ToDomain() *partner.Supplier {
	contact, debt := m.ContactColumns.toDomain()
	contact.Code = m.Code
	return &partner.Supplier{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		Contact:             contact,
		DebtBalance:         debt,
	}
}

// SupplierModelFromDomain creates a persistence model from a domain Supplier
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{
		TenantID:       s.TenantID,
		Code:           s.Code,
		ContactColumns: contactColumnsFromDomain(s.Contact, s.DebtBalance),
	}
	m.FromDomainAggregate(s.TenantAggregateRoot)
	return m
}
