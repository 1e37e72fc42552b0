package persistence

import (
	"bytes"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormProductRepository_LockByIDs(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	lo, hi := uuid.New(), uuid.New()
	if bytes.Compare(lo[:], hi[:]) > 0 {
		lo, hi = hi, lo
	}
	const lockQuery = `SELECT \* FROM "products" WHERE tenant_id = \$1 AND id IN \(\$2,\$3\) ORDER BY id FOR UPDATE`
	columns := []string{"id", "tenant_id", "sku", "name", "unit", "stock"}

	t.Run("locks once in ascending id order", func(t *testing.T) {
		db, mock := mockPostgres(t)
		mock.ExpectQuery(lockQuery).
			WithArgs(tenantID, lo, hi).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(lo.String(), tenantID.String(), "A", "A", "cai", 4).
				AddRow(hi.String(), tenantID.String(), "B", "B", "cai", 9))

		products, err := NewGormProductRepository(db.DB).LockByIDs(ctx, tenantID, []uuid.UUID{hi, lo, hi})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, lo, products[0].ID)
		assert.Equal(t, int64(9), products[1].Stock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing product", func(t *testing.T) {
		db, mock := mockPostgres(t)
		mock.ExpectQuery(lockQuery).
			WithArgs(tenantID, lo, hi).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(lo.String(), tenantID.String(), "A", "A", "cai", 4))

		_, err := NewGormProductRepository(db.DB).LockByIDs(ctx, tenantID, []uuid.UUID{lo, hi})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Contains(t, err.Error(), hi.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no ids issues no query", func(t *testing.T) {
		db, mock := mockPostgres(t)
		products, err := NewGormProductRepository(db.DB).LockByIDs(ctx, tenantID, nil)
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
