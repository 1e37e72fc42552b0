package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestGormProductRepository(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormProductRepository(db)
	tenantID := uuid.New()

	coffee, err := catalog.NewProduct(tenantID, "cf-01", "Cà phê Sữa Đá", "ly")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, coffee))
	tea, err := catalog.NewProduct(tenantID, "TEA-01", "Trà đào", "ly")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tea))

	other, err := catalog.NewProduct(uuid.New(), "CF-01", "Cà phê", "ly")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other), "SKU is unique per tenant only")

	t.Run("finds by id and sku", func(t *testing.T) {
		found, err := repo.FindByIDForTenant(ctx, tenantID, coffee.ID)
		require.NoError(t, err)
		assert.Equal(t, "CF-01", found.SKU)

		found, err = repo.FindBySKU(ctx, tenantID, " cf-01 ")
		require.NoError(t, err)
		assert.Equal(t, coffee.ID, found.ID)

		locked, err := repo.FindByIDForUpdate(ctx, tenantID, tea.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trà đào", locked.Name)
	})

	t.Run("other tenant sees nothing", func(t *testing.T) {
		_, err := repo.FindByIDForTenant(ctx, uuid.New(), coffee.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("search folds accents and matches sku", func(t *testing.T) {
		found, err := repo.FindAllForTenant(ctx, tenantID, shared.Filter{Search: "ca phe sua"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, coffee.ID, found[0].ID)

		found, err = repo.FindAllForTenant(ctx, tenantID, shared.Filter{Search: "tea"})
		require.NoError(t, err)
		require.Len(t, found, 1)

		count, err := repo.CountForTenant(ctx, tenantID, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("duplicate sku is ALREADY_EXISTS", func(t *testing.T) {
		exists, err := repo.ExistsBySKU(ctx, tenantID, "cf-01")
		require.NoError(t, err)
		assert.True(t, exists)

		dup, err := catalog.NewProduct(tenantID, "CF-01", "Other", "cai")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("save updates stock", func(t *testing.T) {
		_, err := coffee.AdjustStock(25)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, coffee))

		found, err := repo.FindByIDForTenant(ctx, tenantID, coffee.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(25), found.Stock)
	})
}

func TestGormStockHistoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormStockHistoryRepository(newSQLiteDB(t))
	tenantID := uuid.New()
	productID := uuid.New()

	entries := []struct {
		delta, balance int64
		op             inventory.OperationType
		ref            string
	}{
		{100, 100, inventory.OperationPurchaseIn, "PN-00001"},
		{-3, 97, inventory.OperationSaleOut, "HD-00001"},
		{-2, 95, inventory.OperationSaleOut, "HD-00002"},
	}
	for i, e := range entries {
		entry, err := inventory.NewStockHistoryEntry(tenantID, productID, "CF-01", "Cà phê", e.delta, e.balance, e.op, e.ref, "")
		require.NoError(t, err)
		entry.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Append(ctx, entry))
	}

	sum, err := repo.SumChangesByProduct(ctx, tenantID, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(95), sum)

	count, err := repo.CountByProduct(ctx, tenantID, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	page, err := repo.FindByProduct(ctx, tenantID, productID, shared.Filter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(95), page[0].BalanceAfter, "newest first")

	byRef, err := repo.FindByReference(ctx, tenantID, "HD-00001")
	require.NoError(t, err)
	require.Len(t, byRef, 1)
	assert.Equal(t, int64(-3), byRef[0].ChangeAmount)

	empty, err := repo.SumChangesByProduct(ctx, tenantID, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestGormInvoiceRepository(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormInvoiceRepository(db)
	tenantID := uuid.New()
	customerID := uuid.New()

	line := func(sku string, qty, price int64) trade.SaleLine {
		l, err := trade.NewSaleLine(uuid.New(), sku, sku, "cai", qty, dec(price), decimal.Zero)
		require.NoError(t, err)
		return l
	}
	due := time.Now().Add(-48 * time.Hour)
	inv, err := trade.NewInvoice(tenantID, trade.InvoiceParams{
		Number:       "HD-00001",
		CustomerID:   &customerID,
		CustomerName: "Khách A",
		Lines:        []trade.SaleLine{line("B", 1, 100000), line("A", 2, 200000)},
		PaidAmount:   dec(100000),
		DueDate:      &due,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, inv))

	t.Run("reload keeps line order", func(t *testing.T) {
		found, err := repo.FindByIDForTenant(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		require.Len(t, found.Lines, 2)
		assert.Equal(t, "B", found.Lines[0].ProductSKU)
		assert.True(t, found.TotalAmount.Equal(dec(500000)))
		assert.Equal(t, trade.InvoiceStatusPartiallyPaid, found.Status)
	})

	t.Run("save replaces lines", func(t *testing.T) {
		found, err := repo.FindByIDForUpdate(ctx, tenantID, inv.ID)
		require.NoError(t, err)
		found.Lines = found.Lines[:1]
		require.NoError(t, repo.Save(ctx, found))

		var count int64
		require.NoError(t, db.Model(&models.InvoiceLineModel{}).Where("invoice_id = ?", inv.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("outstanding ignores cancelled invoices", func(t *testing.T) {
		cancelled, err := trade.NewInvoice(tenantID, trade.InvoiceParams{
			Number:       "HD-00002",
			CustomerID:   &customerID,
			CustomerName: "Khách A",
			Lines:        []trade.SaleLine{line("C", 1, 70000)},
		})
		require.NoError(t, err)
		require.NoError(t, cancelled.Cancel("wrong customer"))
		require.NoError(t, repo.Save(ctx, cancelled))

		sum, err := repo.SumOutstandingByCustomer(ctx, tenantID, customerID)
		require.NoError(t, err)
		assert.True(t, sum.Equal(dec(400000)), sum.String())

		none, err := repo.SumOutstandingByCustomer(ctx, tenantID, uuid.New())
		require.NoError(t, err)
		assert.True(t, none.IsZero())
	})

	t.Run("overdue candidates", func(t *testing.T) {
		found, err := repo.FindOverdueCandidates(ctx, tenantID, time.Now())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "HD-00001", found[0].InvoiceNumber)
	})

	t.Run("duplicate number is SEQUENCE_COLLISION", func(t *testing.T) {
		dup, err := trade.NewInvoice(tenantID, trade.InvoiceParams{
			Number:       "HD-00001",
			CustomerName: "Khách lẻ",
			Lines:        []trade.SaleLine{line("D", 1, 1000)},
			PaidAmount:   dec(1000),
		})
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrSequenceCollision)
	})

	t.Run("list filters by status and search", func(t *testing.T) {
		found, err := repo.FindAllForTenant(ctx, tenantID, shared.Filter{
			Filters: map[string]interface{}{"status": string(trade.InvoiceStatusCancelled)},
		})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "HD-00002", found[0].InvoiceNumber)

		count, err := repo.CountForTenant(ctx, tenantID, shared.Filter{Search: "khách"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestGormVoucherRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormVoucherRepository(newSQLiteDB(t))
	tenantID := uuid.New()

	save := func(number string, vt finance.VoucherType, category finance.VoucherCategory, amount int64) *finance.CashFlowVoucher {
		v, err := finance.NewCashFlowVoucher(tenantID, number, finance.VoucherSourceManual, finance.VoucherDetails{
			Type:        vt,
			Category:    category,
			Amount:      dec(amount),
			VoucherDate: time.Now(),
			Reference:   "HD-00001",
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, v))
		return v
	}
	receipt := save("PT-00001", finance.VoucherTypeReceipt, finance.CategorySale, 300000)
	save("PT-00002", finance.VoucherTypeReceipt, finance.CategorySale, 200000)
	save("PC-00001", finance.VoucherTypePayment, finance.CategoryOtherExpense, 50000)

	total, err := repo.SumByType(ctx, tenantID, finance.VoucherTypeReceipt)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec(500000)), total.String())

	payments, err := repo.FindAllForTenant(ctx, tenantID, finance.VoucherFilter{Type: finance.VoucherTypePayment})
	require.NoError(t, err)
	require.Len(t, payments, 1)

	byRef, err := repo.FindByReference(ctx, tenantID, "HD-00001")
	require.NoError(t, err)
	assert.Len(t, byRef, 3)

	require.NoError(t, repo.DeleteForTenant(ctx, tenantID, receipt.ID))
	assert.ErrorIs(t, repo.DeleteForTenant(ctx, tenantID, receipt.ID), shared.ErrNotFound)

	count, err := repo.CountForTenant(ctx, tenantID, finance.VoucherFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormInventoryCheckRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGormInventoryCheckRepository(newSQLiteDB(t))
	tenantID := uuid.New()

	check, err := inventory.NewInventoryCheck(tenantID, "KK-00001", time.Now(), "")
	require.NoError(t, err)
	require.NoError(t, check.AddItem(uuid.New(), "A", "A", "cai", 100, 97, dec(1000), ""))
	require.NoError(t, check.AddItem(uuid.New(), "B", "B", "cai", 50, 55, dec(2000), ""))
	require.NoError(t, repo.Save(ctx, check))

	found, err := repo.FindByIDForTenant(ctx, tenantID, check.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)

	require.NoError(t, repo.DeleteForTenant(ctx, tenantID, check.ID))
	_, err = repo.FindByIDForTenant(ctx, tenantID, check.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteForTenant(ctx, tenantID, check.ID), shared.ErrNotFound)
}

func TestGormPartyRepositories(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	customers := NewGormCustomerRepository(db)
	suppliers := NewGormSupplierRepository(db)
	tenantID := uuid.New()

	c, err := partner.NewCustomer(tenantID, "kh01", "Nguyễn Văn An")
	require.NoError(t, err)
	c.SetDetails("0901234567", "", "", "", "")
	require.NoError(t, customers.Save(ctx, c))

	s, err := partner.NewSupplier(tenantID, "NCC01", "Công ty Đại Phát")
	require.NoError(t, err)
	require.NoError(t, suppliers.Save(ctx, s))

	for _, term := range []string{"nguyen van", "KH01", "0901"} {
		found, err := customers.FindAllForTenant(ctx, tenantID, shared.Filter{Search: term})
		require.NoError(t, err)
		assert.Len(t, found, 1, term)
	}

	exists, err := suppliers.ExistsByCode(ctx, tenantID, "ncc01")
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := suppliers.FindAllForTenant(ctx, tenantID, shared.Filter{Search: "dai phat"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	dup, err := partner.NewCustomer(tenantID, "KH01", "Other")
	require.NoError(t, err)
	assert.ErrorIs(t, customers.Save(ctx, dup), shared.ErrAlreadyExists)
}

func TestGormTransactionScope(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	scope := NewGormTransactionScope(db)
	tenantID := uuid.New()

	t.Run("error rolls back every write", func(t *testing.T) {
		boom := errors.New("boom")
		err := scope.Execute(ctx, func(repos commerce.TransactionalRepositories) error {
			p, err := catalog.NewProduct(tenantID, "ROLL-1", "Rolled back", "cai")
			require.NoError(t, err)
			require.NoError(t, repos.Products().Save(ctx, p))
			_, err = repos.Sequences().Next(ctx, tenantID, sequence.DocumentTypeInvoice)
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		exists, err := NewGormProductRepository(db).ExistsBySKU(ctx, tenantID, "ROLL-1")
		require.NoError(t, err)
		assert.False(t, exists)

		var seqCount int64
		require.NoError(t, db.Model(&models.DocumentSequenceModel{}).Count(&seqCount).Error)
		assert.Zero(t, seqCount)
	})

	t.Run("sequence numbers increase across commits", func(t *testing.T) {
		var numbers []string
		for range 3 {
			err := scope.Execute(ctx, func(repos commerce.TransactionalRepositories) error {
				n, err := repos.Sequences().Next(ctx, tenantID, sequence.DocumentTypeOrder)
				numbers = append(numbers, n)
				return err
			})
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"DH-00001", "DH-00002", "DH-00003"}, numbers)
	})

	t.Run("first allocation continues after stored documents", func(t *testing.T) {
		legacyTenant := uuid.New()
		q, err := trade.NewQuote(legacyTenant, "BG-00041", uuid.New(), "Khách", []trade.SaleLine{mustLine(t)}, "")
		require.NoError(t, err)
		require.NoError(t, NewGormQuoteRepository(db).Save(ctx, q))

		n, err := NewGormSequenceAllocator(db).Next(ctx, legacyTenant, sequence.DocumentTypeQuote)
		require.NoError(t, err)
		assert.Equal(t, "BG-00042", n)

		n, err = NewGormSequenceAllocator(db).Next(ctx, legacyTenant, sequence.DocumentTypeQuote)
		require.NoError(t, err)
		assert.Equal(t, "BG-00043", n)
	})
}

func mustLine(t *testing.T) trade.SaleLine {
	t.Helper()
	l, err := trade.NewSaleLine(uuid.New(), "X", "X", "cai", 1, dec(1000), decimal.Zero)
	require.NoError(t, err)
	return l
}
