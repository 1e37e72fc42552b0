package commerce

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"go.uber.org/zap"
)

// Services bundles every commerce application service
type Services struct {
	Products  *ProductService
	Partners  *PartnerService
	Quotes    *QuoteService
	Orders    *OrderService
	Invoices  *InvoiceService
	Purchases *PurchaseService
	Checks    *InventoryCheckService
	Vouchers  *VoucherService
}

// NewServices wires all services over one transaction scope.
// reads serves queries outside of a transaction.
func NewServices(scope TransactionScope, reads TransactionalRepositories, publisher shared.EventPublisher, logger *zap.Logger) *Services {
	exec := newExecutor(scope, publisher, logger)
	return &Services{
		Products:  &ProductService{exec: exec, reads: reads},
		Partners:  &PartnerService{exec: exec, reads: reads},
		Quotes:    &QuoteService{exec: exec, reads: reads},
		Orders:    &OrderService{exec: exec, reads: reads},
		Invoices:  &InvoiceService{exec: exec, reads: reads},
		Purchases: &PurchaseService{exec: exec, reads: reads},
		Checks:    &InventoryCheckService{exec: exec, reads: reads},
		Vouchers:  &VoucherService{exec: exec, reads: reads},
	}
}
