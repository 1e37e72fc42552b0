// Package sequence defines the human-readable document numbers used by the
// commerce core, e.g. "HD-00042".
package sequence

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentType identifies a numbered document family
type DocumentType string

const (
	DocumentTypeQuote          DocumentType = "QUOTE"
	DocumentTypeOrder          DocumentType = "ORDER"
	DocumentTypeInvoice        DocumentType = "INVOICE"
	DocumentTypePurchase       DocumentType = "PURCHASE"
	DocumentTypeInventoryCheck DocumentType = "INVENTORY_CHECK"
	DocumentTypeReceipt        DocumentType = "RECEIPT"
	DocumentTypePayment        DocumentType = "PAYMENT"
)

// Width is the zero-padded width of the numeric part
const Width = 5

var prefixes = map[DocumentType]string{
	DocumentTypeQuote:          "BG",
	DocumentTypeOrder:          "DH",
	DocumentTypeInvoice:        "HD",
	DocumentTypePurchase:       "PN",
	DocumentTypeInventoryCheck: "KK",
	DocumentTypeReceipt:        "PT",
	DocumentTypePayment:        "PC",
}

// AllDocumentTypes lists every numbered document type
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeQuote,
		DocumentTypeOrder,
		DocumentTypeInvoice,
		DocumentTypePurchase,
		DocumentTypeInventoryCheck,
		DocumentTypeReceipt,
		DocumentTypePayment,
	}
}

// IsValid checks if the document type is known
func (t DocumentType) IsValid() bool {
	_, ok := prefixes[t]
	return ok
}

// Prefix returns the number prefix of the document type
func (t DocumentType) Prefix() string {
	return prefixes[t]
}

// String returns the string representation of DocumentType
func (t DocumentType) String() string {
	return string(t)
}

// Format renders n as PREFIX-NNNNN
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, Width, n)
}

var numberPattern = regexp.MustCompile(`^([A-Z]+)-(\d+)$`)

// Parse extracts the numeric part of a document number with the given prefix.
// Anything that does not match PREFIX-<digits> is SEQUENCE_CORRUPT.
func Parse(prefix, number string) (int64, error) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil || m[1] != prefix {
		return 0, corrupt(number)
	}
	n, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil || n < 1 {
		return 0, corrupt(number)
	}
	return n, nil
}

func corrupt(number string) *shared.DomainError {
	return shared.NewDomainError(shared.CodeSequenceCorrupt, fmt.Sprintf("cannot parse document number %q", number))
}

// Allocator hands out the next document number of a type within an organization.
// Implementations run inside the caller's transaction; a number becomes visible
// to others only when that transaction commits, and is never reused after.
type Allocator interface {
	Next(ctx context.Context, tenantID uuid.UUID, docType DocumentType) (string, error)
}
