package persistence

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements commerce.TransactionScope using GORM transactions
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn in one transaction. An error from fn rolls everything back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos commerce.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormRepositories(tx))
	})
}

// GormRepositories hands out repositories bound to one *gorm.DB.
// Bound to a transaction it backs the scope; bound to the pool it serves reads.
type GormRepositories struct {
	db *gorm.DB
}

// NewGormRepositories creates repositories over db
func NewGormRepositories(db *gorm.DB) *GormRepositories {
	return &GormRepositories{db: db}
}

func (r *GormRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.db)
}

func (r *GormRepositories) StockHistory() inventory.StockHistoryRepository {
	return NewGormStockHistoryRepository(r.db)
}

func (r *GormRepositories) InventoryChecks() inventory.InventoryCheckRepository {
	return NewGormInventoryCheckRepository(r.db)
}

func (r *GormRepositories) Customers() partner.CustomerRepository {
	return NewGormCustomerRepository(r.db)
}

func (r *GormRepositories) Suppliers() partner.SupplierRepository {
	return NewGormSupplierRepository(r.db)
}

func (r *GormRepositories) Vouchers() finance.VoucherRepository {
	return NewGormVoucherRepository(r.db)
}

func (r *GormRepositories) Quotes() trade.QuoteRepository {
	return NewGormQuoteRepository(r.db)
}

func (r *GormRepositories) Orders() trade.OrderRepository {
	return NewGormOrderRepository(r.db)
}

func (r *GormRepositories) Invoices() trade.InvoiceRepository {
	return NewGormInvoiceRepository(r.db)
}

func (r *GormRepositories) Purchases() trade.PurchaseRepository {
	return NewGormPurchaseRepository(r.db)
}

func (r *GormRepositories) Sequences() sequence.Allocator {
	return NewGormSequenceAllocator(r.db)
}

var (
	_ commerce.TransactionScope          = (*GormTransactionScope)(nil)
	_ commerce.TransactionalRepositories = (*GormRepositories)(nil)
)
