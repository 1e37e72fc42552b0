package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const nextSequenceSQL = `INSERT INTO document_sequences (tenant_id, doc_type, last_value, updated_at)
VALUES (?, ?, 1, ?)
ON CONFLICT (tenant_id, doc_type)
DO UPDATE SET last_value = document_sequences.last_value + 1, updated_at = excluded.updated_at
RETURNING last_value`

// owningTables maps each document type to the table holding its numbers
var owningTables = map[sequence.DocumentType]string{
	sequence.DocumentTypeQuote:          "quotes",
	sequence.DocumentTypeOrder:          "orders",
	sequence.DocumentTypeInvoice:        "invoices",
	sequence.DocumentTypePurchase:       "purchases",
	sequence.DocumentTypeInventoryCheck: "inventory_checks",
	sequence.DocumentTypeReceipt:        "cash_flow_vouchers",
	sequence.DocumentTypePayment:        "cash_flow_vouchers",
}

// GormSequenceAllocator hands out document numbers from a per-tenant counter row.
// The upsert takes a row lock that is held until the caller's transaction ends,
// so concurrent allocations of one type serialize and never repeat.
type GormSequenceAllocator struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSequenceAllocator creates an allocator bound to db, usually a transaction
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db, now: time.Now}
}

// Next returns the next number of docType for the tenant, e.g. "HD-00042".
// The first allocation of a type seeds the counter from numbers already stored,
// so tenants with documents from before the counter existed continue after them.
func (a *GormSequenceAllocator) Next(ctx context.Context, tenantID uuid.UUID, docType sequence.DocumentType) (string, error) {
	if !docType.IsValid() {
		return "", shared.NewInvalidInputError(fmt.Sprintf("unknown document type %q", docType))
	}
	db := a.db.WithContext(ctx)

	var value int64
	if err := db.Raw(nextSequenceSQL, tenantID, string(docType), a.now()).Scan(&value).Error; err != nil {
		return "", translateError(err)
	}
	if value != 1 {
		return sequence.Format(docType.Prefix(), value), nil
	}

	highest, err := a.highestStored(db, tenantID, docType)
	if err != nil {
		return "", err
	}
	if highest == 0 {
		return sequence.Format(docType.Prefix(), 1), nil
	}

	value = highest + 1
	err = db.Exec(`UPDATE document_sequences SET last_value = ?, updated_at = ? WHERE tenant_id = ? AND doc_type = ?`,
		value, a.now(), tenantID, string(docType)).Error
	if err != nil {
		return "", translateError(err)
	}
	return sequence.Format(docType.Prefix(), value), nil
}

// highestStored parses every stored number of the type. One malformed number
// fails the allocation rather than risk handing out a duplicate.
func (a *GormSequenceAllocator) highestStored(db *gorm.DB, tenantID uuid.UUID, docType sequence.DocumentType) (int64, error) {
	prefix := docType.Prefix()
	var numbers []string
	err := db.Table(owningTables[docType]).
		Where("tenant_id = ? AND document_number LIKE ?", tenantID, prefix+"-%").
		Pluck("document_number", &numbers).Error
	if err != nil {
		return 0, translateError(err)
	}

	var highest int64
	for _, number := range numbers {
		n, err := sequence.Parse(prefix, number)
		if err != nil {
			return 0, err
		}
		if n > highest {
			highest = n
		}
	}
	return highest, nil
}

var _ sequence.Allocator = (*GormSequenceAllocator)(nil)
