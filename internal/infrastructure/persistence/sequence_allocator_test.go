package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockAllocator(t *testing.T) (*GormSequenceAllocator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := mockPostgres(t)
	a := NewGormSequenceAllocator(db.DB)
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return fixed }
	return a, mock
}

func TestGormSequenceAllocator_Next(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("increments an existing counter", func(t *testing.T) {
		a, mock := newMockAllocator(t)
		mock.ExpectQuery(`INSERT INTO document_sequences`).
			WithArgs(tenantID, "INVOICE", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(42))

		number, err := a.Next(ctx, tenantID, sequence.DocumentTypeInvoice)
		require.NoError(t, err)
		assert.Equal(t, "HD-00042", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first allocation without stored documents starts at one", func(t *testing.T) {
		a, mock := newMockAllocator(t)
		mock.ExpectQuery(`INSERT INTO document_sequences`).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(1))
		mock.ExpectQuery(`SELECT "document_number" FROM "quotes" WHERE tenant_id = \$1 AND document_number LIKE \$2`).
			WithArgs(tenantID, "BG-%").
			WillReturnRows(sqlmock.NewRows([]string{"document_number"}))

		number, err := a.Next(ctx, tenantID, sequence.DocumentTypeQuote)
		require.NoError(t, err)
		assert.Equal(t, "BG-00001", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first allocation continues after stored numbers", func(t *testing.T) {
		a, mock := newMockAllocator(t)
		mock.ExpectQuery(`INSERT INTO document_sequences`).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(1))
		mock.ExpectQuery(`SELECT "document_number" FROM "cash_flow_vouchers"`).
			WithArgs(tenantID, "PT-%").
			WillReturnRows(sqlmock.NewRows([]string{"document_number"}).
				AddRow("PT-00007").
				AddRow("PT-100000").
				AddRow("PT-00012"))
		mock.ExpectExec(`UPDATE document_sequences SET last_value = \$1`).
			WithArgs(int64(100001), sqlmock.AnyArg(), tenantID, "RECEIPT").
			WillReturnResult(sqlmock.NewResult(0, 1))

		number, err := a.Next(ctx, tenantID, sequence.DocumentTypeReceipt)
		require.NoError(t, err)
		assert.Equal(t, "PT-100001", number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed stored number is SEQUENCE_CORRUPT", func(t *testing.T) {
		a, mock := newMockAllocator(t)
		mock.ExpectQuery(`INSERT INTO document_sequences`).
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(1))
		mock.ExpectQuery(`SELECT "document_number" FROM "invoices"`).
			WillReturnRows(sqlmock.NewRows([]string{"document_number"}).
				AddRow("HD-00003").
				AddRow("HD-3A"))

		_, err := a.Next(ctx, tenantID, sequence.DocumentTypeInvoice)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrSequenceCorrupt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown document type is rejected before touching the database", func(t *testing.T) {
		a, mock := newMockAllocator(t)

		_, err := a.Next(ctx, tenantID, sequence.DocumentType("REFUND"))
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
