package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mockPostgres(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return &Database{DB: gdb}, mock
}

func TestForTenant(t *testing.T) {
	db, mock := mockPostgres(t)
	tenantID := uuid.New()

	type stockRow struct {
		ID       uuid.UUID
		TenantID uuid.UUID
		Stock    int64
	}
	mock.ExpectQuery(`SELECT \* FROM "stock_rows" WHERE tenant_id = \$1 AND stock < \$2`).
		WithArgs(tenantID, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "stock"}).
			AddRow(uuid.New(), tenantID, 1).
			AddRow(uuid.New(), tenantID, 2))

	var low []stockRow
	require.NoError(t, forTenant(db.DB, tenantID).Where("stock < ?", 3).Find(&low).Error)
	assert.Len(t, low, 2)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.PanicsWithValue(t, "persistence: tenant scope requested with nil tenant ID", func() {
		forTenant(db.DB, uuid.Nil)
	})
}

func TestDatabase_Pool(t *testing.T) {
	db, mock := mockPostgres(t)
	pool, err := db.pool()
	require.NoError(t, err)
	pool.SetMaxOpenConns(7)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.EqualError(t, db.Ping(context.Background()), "connection refused")

	mock.ExpectPing()
	assert.NoError(t, db.Ping(context.Background()))

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 7, stats.MaxOpenConnections)

	mock.ExpectClose()
	assert.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
