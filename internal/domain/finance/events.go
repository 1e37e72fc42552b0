package finance

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeVoucher = "CashFlowVoucher"

// Event type constants
const (
	EventTypeVoucherRecorded = "VoucherRecorded"
)

// VoucherRecordedEvent is raised when a voucher is appended to the log
type VoucherRecordedEvent struct {
	shared.BaseDomainEvent
	VoucherNumber string          `json:"voucher_number"`
	VoucherType   VoucherType     `json:"voucher_type"`
	Category      VoucherCategory `json:"category"`
	Source        VoucherSource   `json:"source"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference,omitempty"`
}

// NewVoucherRecordedEvent creates a new VoucherRecordedEvent
func NewVoucherRecordedEvent(v *CashFlowVoucher) *VoucherRecordedEvent {
	return &VoucherRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVoucherRecorded, AggregateTypeVoucher, v.ID, v.TenantID),
		VoucherNumber:   v.VoucherNumber,
		VoucherType:     v.Type,
		Category:        v.Category,
		Source:          v.Source,
		Amount:          v.Amount,
		Reference:       v.Reference,
	}
}
