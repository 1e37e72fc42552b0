package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/google/uuid"
)

// VoucherLog appends cash-flow vouchers. It never mutates any other entity.
type VoucherLog struct{}

// NewVoucherLog creates a VoucherLog
func NewVoucherLog() *VoucherLog {
	return &VoucherLog{}
}

// Append numbers and stores a voucher inside the caller's transaction.
// Receipts are numbered PT-, payments PC-.
func (l *VoucherLog) Append(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, source finance.VoucherSource, details finance.VoucherDetails) (*finance.CashFlowVoucher, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	docType := sequence.DocumentTypeReceipt
	if details.Type == finance.VoucherTypePayment {
		docType = sequence.DocumentTypePayment
	}
	number, err := repos.Sequences().Next(ctx, tenantID, docType)
	if err != nil {
		return nil, err
	}

	voucher, err := finance.NewCashFlowVoucher(tenantID, number, source, details)
	if err != nil {
		return nil, err
	}
	if err := repos.Vouchers().Save(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}
