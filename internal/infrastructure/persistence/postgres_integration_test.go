//go:build integration

package persistence_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/migration"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newPostgres starts a disposable postgres and applies the embedded schema
func newPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("commerce_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(20)
	t.Cleanup(func() { _ = sqlDB.Close() })

	m, err := migration.New(sqlDB, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	return db
}

func TestPostgres_ConcurrentSalesNeverOversell(t *testing.T) {
	db := newPostgres(t)
	ctx := context.Background()
	svc := commerce.NewServices(
		persistence.NewGormTransactionScope(db),
		persistence.NewGormRepositories(db),
		nil,
		zaptest.NewLogger(t),
	)
	tenantID, userID := uuid.New(), uuid.New()

	product, err := svc.Products.Create(ctx, tenantID, userID, commerce.CreateProductInput{
		SKU: "HOT-1", Name: "Hot item", Unit: "cai",
		SellPrice: decimal.NewFromInt(10000), CostPrice: decimal.NewFromInt(6000),
		InitialStock: 5,
	})
	require.NoError(t, err)

	const buyers = 12
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make(map[string]bool)
		short   int
	)
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Invoices.Create(ctx, tenantID, userID, commerce.CreateInvoiceInput{
				Lines:      []commerce.SaleLineInput{{ProductID: product.ID, Quantity: 1}},
				PaidAmount: decimal.NewFromInt(10000),
			})
			mu.Lock()
			defer mu.Unlock()
			var stockErr *shared.InsufficientStockError
			switch {
			case err == nil:
				numbers[res.Document.InvoiceNumber] = true
			case errors.As(err, &stockErr):
				short++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, numbers, 5, "invoice numbers must be unique and one per successful sale")
	assert.Equal(t, buyers-5, short)

	got, err := svc.Products.GetByID(ctx, tenantID, product.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Stock)

	check, err := svc.Products.VerifyStock(ctx, tenantID, product.ID)
	require.NoError(t, err)
	assert.True(t, check.Consistent, "stock %d vs ledger %d", check.Stock, check.LedgerSum)
}

func TestPostgres_OppositeLineOrdersDoNotDeadlock(t *testing.T) {
	db := newPostgres(t)
	ctx := context.Background()
	svc := commerce.NewServices(
		persistence.NewGormTransactionScope(db),
		persistence.NewGormRepositories(db),
		nil,
		zaptest.NewLogger(t),
	)
	tenantID, userID := uuid.New(), uuid.New()

	newProduct := func(sku string) uuid.UUID {
		p, err := svc.Products.Create(ctx, tenantID, userID, commerce.CreateProductInput{
			SKU: sku, Name: sku, Unit: "cai",
			SellPrice: decimal.NewFromInt(1000), InitialStock: 100,
		})
		require.NoError(t, err)
		return p.ID
	}
	first, second := newProduct("PAIR-A"), newProduct("PAIR-B")
	customer, err := svc.Partners.CreateCustomer(ctx, tenantID, userID, commerce.PartyInput{Code: "KH-PAIR", Name: "Pair buyer"})
	require.NoError(t, err)

	const sales = 16
	var wg sync.WaitGroup
	errs := make(chan error, sales)
	for i := range sales {
		lines := []commerce.SaleLineInput{{ProductID: first, Quantity: 1}, {ProductID: second, Quantity: 2}}
		if i%2 == 1 {
			lines[0], lines[1] = lines[1], lines[0]
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Invoices.Create(ctx, tenantID, userID, commerce.CreateInvoiceInput{
				CustomerID: &customer.ID,
				Lines:      lines,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	a, err := svc.Products.GetByID(ctx, tenantID, first)
	require.NoError(t, err)
	b, err := svc.Products.GetByID(ctx, tenantID, second)
	require.NoError(t, err)
	assert.Equal(t, int64(100-sales), a.Stock)
	assert.Equal(t, int64(100-2*sales), b.Stock)

	got, err := svc.Partners.GetCustomer(ctx, tenantID, customer.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3000*sales).Equal(got.Debt), "debt %s", got.Debt)
}

func TestPostgres_DebtStaysReconciled(t *testing.T) {
	db := newPostgres(t)
	ctx := context.Background()
	svc := commerce.NewServices(
		persistence.NewGormTransactionScope(db),
		persistence.NewGormRepositories(db),
		nil,
		zaptest.NewLogger(t),
	)
	tenantID, userID := uuid.New(), uuid.New()

	product, err := svc.Products.Create(ctx, tenantID, userID, commerce.CreateProductInput{
		SKU: "P-1", Name: "Rice 5kg", Unit: "bao",
		SellPrice: decimal.NewFromInt(120000), InitialStock: 100,
	})
	require.NoError(t, err)
	customer, err := svc.Partners.CreateCustomer(ctx, tenantID, userID, commerce.PartyInput{Code: "KH1", Name: "Co Hoa"})
	require.NoError(t, err)

	var invoiceIDs []uuid.UUID
	for i := range 3 {
		res, err := svc.Invoices.Create(ctx, tenantID, userID, commerce.CreateInvoiceInput{
			CustomerID: &customer.ID,
			Lines:      []commerce.SaleLineInput{{ProductID: product.ID, Quantity: int64(i + 1)}},
			PaidAmount: decimal.NewFromInt(20000),
		})
		require.NoError(t, err)
		invoiceIDs = append(invoiceIDs, res.Document.ID)
	}
	_, err = svc.Invoices.RecordPayment(ctx, tenantID, invoiceIDs[0], commerce.RecordPaymentInput{Amount: decimal.NewFromInt(50000)})
	require.NoError(t, err)
	_, err = svc.Invoices.Return(ctx, tenantID, invoiceIDs[2], commerce.ReturnInvoiceInput{Reason: "wrong item"})
	require.NoError(t, err)

	rec, err := svc.Partners.ReconcileCustomer(ctx, tenantID, customer.ID)
	require.NoError(t, err)
	assert.True(t, rec.Consistent, "debt %s vs outstanding %s", rec.Debt, rec.Outstanding)
	// the returned invoice no longer counts: (120000-20000-50000) + (240000-20000)
	assert.True(t, rec.Debt.Equal(decimal.NewFromInt(270000)), rec.Debt.String())
}
