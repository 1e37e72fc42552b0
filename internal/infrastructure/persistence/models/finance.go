package models

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashFlowVoucherModel is the persistence model for receipt and payment vouchers.
// PT- and PC- numbers share one table and one unique index.
type CashFlowVoucherModel struct {
	AggregateModel
	TenantID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_voucher_tenant_number,priority:1;index:idx_voucher_tenant_date,priority:1"`
	DocumentNumber      string           `gorm:"type:varchar(30);not null;uniqueIndex:idx_voucher_tenant_number,priority:2"`
	Source              string           `gorm:"type:varchar(10);not null"`
	Type                string           `gorm:"type:varchar(10);not null"`
	Category            string           `gorm:"type:varchar(30);not null"`
	Amount              decimal.Decimal  `gorm:"type:decimal(18,4);not null;check:chk_voucher_amount,amount > 0"`
	VoucherDate         time.Time        `gorm:"not null;index:idx_voucher_tenant_date,priority:2"`
	CounterpartyName    string           `gorm:"type:varchar(200)"`
	CounterpartyAddress string           `gorm:"type:varchar(300)"`
	Description         string           `gorm:"type:varchar(500)"`
	InputVAT            *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Reference           string           `gorm:"type:varchar(30);index"`
}

// TableName returns the table name for GORM
func (CashFlowVoucherModel) TableName() string {
	return "cash_flow_vouchers"
}

// ToDomain converts the persistence model to a domain CashFlowVoucher
func (m *CashFlowVoucherModel) ToDomain() *finance.CashFlowVoucher {
	return &finance.CashFlowVoucher{
		TenantAggregateRoot: m.ToAggregateRoot(m.TenantID),
		VoucherNumber:       m.DocumentNumber,
		Source:              finance.VoucherSource(m.Source),
		VoucherDetails: finance.VoucherDetails{
			Type:                finance.VoucherType(m.Type),
			Category:            finance.VoucherCategory(m.Category),
			Amount:              m.Amount,
			VoucherDate:         m.VoucherDate,
			CounterpartyName:    m.CounterpartyName,
			CounterpartyAddress: m.CounterpartyAddress,
			Description:         m.Description,
			InputVAT:            m.InputVAT,
			Reference:           m.Reference,
		},
	}
}

// CashFlowVoucherModelFromDomain creates a persistence model from a domain voucher
func CashFlowVoucherModelFromDomain(v *finance.CashFlowVoucher) *CashFlowVoucherModel {
	m := &CashFlowVoucherModel{
		TenantID:            v.TenantID,
		DocumentNumber:      v.VoucherNumber,
		Source:              string(v.Source),
		Type:                string(v.Type),
		Category:            string(v.Category),
		Amount:              v.Amount,
		VoucherDate:         v.VoucherDate,
		CounterpartyName:    v.CounterpartyName,
		CounterpartyAddress: v.CounterpartyAddress,
		Description:         v.Description,
		InputVAT:            v.InputVAT,
		Reference:           v.Reference,
	}
	m.FromDomainAggregate(v.TenantAggregateRoot)
	return m
}
