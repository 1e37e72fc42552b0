package finance

import (
	"strings"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherType is the direction of a cash movement
type VoucherType string

const (
	VoucherTypeReceipt VoucherType = "RECEIPT" // thu: money in
	VoucherTypePayment VoucherType = "PAYMENT" // chi: money out
)

// IsValid checks if the voucher type is known
func (t VoucherType) IsValid() bool {
	return t == VoucherTypeReceipt || t == VoucherTypePayment
}

// String returns the string representation of VoucherType
func (t VoucherType) String() string {
	return string(t)
}

// VoucherCategory classifies a voucher for bookkeeping and tax reporting
type VoucherCategory string

const (
	CategorySale             VoucherCategory = "SALE"
	CategoryDebtCollection   VoucherCategory = "DEBT_COLLECTION"
	CategoryOtherIncome      VoucherCategory = "OTHER_INCOME"
	CategoryPurchase         VoucherCategory = "PURCHASE"
	CategorySupplierPayment  VoucherCategory = "SUPPLIER_PAYMENT"
	CategoryRefund           VoucherCategory = "REFUND"
	CategoryOperatingExpense VoucherCategory = "OPERATING_EXPENSE"
	CategoryOtherExpense     VoucherCategory = "OTHER_EXPENSE"
)

var categoryDirection = map[VoucherCategory]VoucherType{
	CategorySale:             VoucherTypeReceipt,
	CategoryDebtCollection:   VoucherTypeReceipt,
	CategoryOtherIncome:      VoucherTypeReceipt,
	CategoryPurchase:         VoucherTypePayment,
	CategorySupplierPayment:  VoucherTypePayment,
	CategoryRefund:           VoucherTypePayment,
	CategoryOperatingExpense: VoucherTypePayment,
	CategoryOtherExpense:     VoucherTypePayment,
}

// IsValid checks if the category is known
func (c VoucherCategory) IsValid() bool {
	_, ok := categoryDirection[c]
	return ok
}

// Direction returns the voucher type this category belongs to
func (c VoucherCategory) Direction() VoucherType {
	return categoryDirection[c]
}

// VoucherSource tells automatic vouchers from user-entered ones
type VoucherSource string

const (
	VoucherSourceAuto   VoucherSource = "AUTO"
	VoucherSourceManual VoucherSource = "MANUAL"
)

// VoucherDetails are the user-visible fields of a voucher
type VoucherDetails struct {
	Type                VoucherType
	Category            VoucherCategory
	Amount              decimal.Decimal
	VoucherDate         time.Time
	CounterpartyName    string
	CounterpartyAddress string
	Description         string
	InputVAT            *decimal.Decimal
	Reference           string
}

// Validate checks the details independently of persistence
func (d VoucherDetails) Validate() error {
	if !d.Type.IsValid() {
		return shared.NewInvalidInputError("Voucher type must be RECEIPT or PAYMENT")
	}
	if !d.Category.IsValid() {
		return shared.NewInvalidInputError("Unknown voucher category: " + string(d.Category))
	}
	if d.Category.Direction() != d.Type {
		return shared.NewInvalidInputError("Category " + string(d.Category) + " cannot be used on a " + string(d.Type) + " voucher")
	}
	if !d.Amount.IsPositive() {
		return shared.NewInvalidInputError("Voucher amount must be positive")
	}
	if d.InputVAT != nil {
		if d.Type != VoucherTypePayment {
			return shared.NewInvalidInputError("Input VAT is only recorded on payment vouchers")
		}
		if d.InputVAT.IsNegative() || d.InputVAT.GreaterThan(d.Amount) {
			return shared.NewInvalidInputError("Input VAT must be between 0 and the voucher amount")
		}
	}
	if len(d.Description) > 500 {
		return shared.NewInvalidInputError("Description cannot exceed 500 characters")
	}
	return nil
}

// CashFlowVoucher is one entry of the cash-flow log.
// AUTO vouchers are written by commerce operations and are immutable;
// MANUAL vouchers may be edited or deleted by the user.
type CashFlowVoucher struct {
	shared.TenantAggregateRoot
	VoucherNumber string
	Source        VoucherSource
	VoucherDetails
}

// NewCashFlowVoucher creates a voucher with an allocated number
func NewCashFlowVoucher(tenantID uuid.UUID, number string, source VoucherSource, details VoucherDetails) (*CashFlowVoucher, error) {
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewInvalidInputError("Voucher number cannot be empty")
	}
	if source != VoucherSourceAuto && source != VoucherSourceManual {
		return nil, shared.NewInvalidInputError("Voucher source must be AUTO or MANUAL")
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	if details.VoucherDate.IsZero() {
		details.VoucherDate = time.Now()
	}

	v := &CashFlowVoucher{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		VoucherNumber:       number,
		Source:              source,
		VoucherDetails:      details,
	}
	v.AddDomainEvent(NewVoucherRecordedEvent(v))
	return v, nil
}

// Edit replaces the details of a manual voucher. The type cannot change
// because it decides the number prefix.
func (v *CashFlowVoucher) Edit(details VoucherDetails) error {
	if err := v.ensureManual("edit"); err != nil {
		return err
	}
	if details.Type != v.Type {
		return shared.NewInvalidInputError("Voucher type cannot be changed")
	}
	if err := details.Validate(); err != nil {
		return err
	}
	if details.VoucherDate.IsZero() {
		details.VoucherDate = v.VoucherDate
	}
	v.VoucherDetails = details
	v.IncrementVersion()
	return nil
}

// EnsureDeletable rejects deletion of vouchers written by commerce operations
func (v *CashFlowVoucher) EnsureDeletable() error {
	return v.ensureManual("delete")
}

// IsReceipt reports whether money came in
func (v *CashFlowVoucher) IsReceipt() bool {
	return v.Type == VoucherTypeReceipt
}

// SignedAmount is positive for receipts and negative for payments
func (v *CashFlowVoucher) SignedAmount() decimal.Decimal {
	if v.IsReceipt() {
		return v.Amount
	}
	return v.Amount.Neg()
}

func (v *CashFlowVoucher) ensureManual(action string) error {
	if v.Source != VoucherSourceManual {
		return shared.NewInvalidTransitionError("voucher "+v.VoucherNumber, string(v.Source), action)
	}
	return nil
}
