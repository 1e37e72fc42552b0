package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
)

// TransactionScope runs a function inside one database transaction.
// If the function returns an error the transaction is rolled back, so stock,
// debt, vouchers and the document either all change or none of them do.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories gives access to every repository the commerce core writes.
// All repositories returned share the same underlying transaction.
type TransactionalRepositories interface {
	Products() catalog.ProductRepository
	StockHistory() inventory.StockHistoryRepository
	InventoryChecks() inventory.InventoryCheckRepository
	Customers() partner.CustomerRepository
	Suppliers() partner.SupplierRepository
	Vouchers() finance.VoucherRepository
	Quotes() trade.QuoteRepository
	Orders() trade.OrderRepository
	Invoices() trade.InvoiceRepository
	Purchases() trade.PurchaseRepository
	Sequences() sequence.Allocator
}
