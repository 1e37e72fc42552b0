package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/google/uuid"
)

// OrderService handles sales orders
type OrderService struct {
	exec  *executor
	reads TransactionalRepositories
}

// Create enters an order directly. It has no stock, debt or cash effect.
func (s *OrderService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateOrderInput) (*OrderResponse, error) {
	var order *trade.Order
	err := s.exec.run(ctx, "OrderService", "Create", tenantID, func(u *unitOfWork) error {
		customer, err := u.repos.Customers().FindByIDForTenant(u.ctx, tenantID, input.CustomerID)
		if err != nil {
			return err
		}
		lines, err := u.priceSaleLines(input.Lines, false)
		if err != nil {
			return err
		}
		number, err := u.nextNumber(sequence.DocumentTypeOrder)
		if err != nil {
			return err
		}
		order, err = trade.NewOrder(tenantID, number, customer.ID, customer.Name, lines, input.Note)
		if err != nil {
			return err
		}
		order.SetCreatedBy(userID)
		if err := u.repos.Orders().Save(u.ctx, order); err != nil {
			return err
		}
		u.collect(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// ConvertToInvoice fulfils an order in one transaction:
// stock goes out per line, current costs are snapshotted, the unpaid part is
// added to the customer's debt, a SALE receipt is written for any payment and
// the order is completed with a link to the new invoice.
func (s *OrderService) ConvertToInvoice(ctx context.Context, tenantID, userID, id uuid.UUID, input ConvertOrderInput) (*DocumentResult[InvoiceResponse], error) {
	var (
		invoice *trade.Invoice
		voucher *finance.CashFlowVoucher
	)
	err := s.exec.run(ctx, "OrderService", "ConvertToInvoice", tenantID, func(u *unitOfWork) error {
		order, err := u.repos.Orders().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := order.EnsureConvertible(); err != nil {
			return err
		}
		products, err := u.lockProducts(saleLineProducts(order.Lines))
		if err != nil {
			return err
		}
		for _, product := range products {
			order.SetCostPrice(product.ID, product.CostPrice)
		}
		customer, err := u.repos.Customers().FindByIDForUpdate(u.ctx, tenantID, order.CustomerID)
		if err != nil {
			return err
		}

		number, err := u.nextNumber(sequence.DocumentTypeInvoice)
		if err != nil {
			return err
		}
		customerID := customer.ID
		orderID := order.ID
		invoice, err = trade.NewInvoice(tenantID, trade.InvoiceParams{
			Number:       number,
			CustomerID:   &customerID,
			CustomerName: customer.Name,
			OrderID:      &orderID,
			Lines:        order.CopyLines(),
			PaidAmount:   input.PaymentAmount,
			DueDate:      input.DueDate,
			Note:         order.Note,
		})
		if err != nil {
			return err
		}
		invoice.SetCreatedBy(userID)

		for _, line := range invoice.Lines {
			if _, err := u.changeStock(line.ProductID, -line.Quantity, inventory.OperationSaleOut, number, "order "+order.OrderNumber); err != nil {
				return err
			}
		}
		if err := u.adjustCustomerDebt(customer.ID, invoice.Outstanding()); err != nil {
			return err
		}
		if input.PaymentAmount.IsPositive() {
			voucher, err = u.appendVoucher(finance.VoucherDetails{
				Type:                finance.VoucherTypeReceipt,
				Category:            finance.CategorySale,
				Amount:              input.PaymentAmount,
				CounterpartyName:    customer.Name,
				CounterpartyAddress: customer.Address,
				Description:         "payment for invoice " + number,
				Reference:           number,
			})
			if err != nil {
				return err
			}
		}

		if err := u.repos.Invoices().Save(u.ctx, invoice); err != nil {
			return err
		}
		if err := order.Complete(invoice.ID, input.PaymentAmount); err != nil {
			return err
		}
		if err := u.repos.Orders().Save(u.ctx, order); err != nil {
			return err
		}
		u.collect(invoice, order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newInvoiceResult(invoice, voucher), nil
}

// GetByID returns one order with its lines
func (s *OrderService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.reads.Orders().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// List lists orders
func (s *OrderService) List(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[OrderResponse], error) {
	filter := query.ToFilter()
	orders, err := s.reads.Orders().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}
	total, err := s.reads.Orders().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(orders, ToOrderResponse), total, filter.Page, filter.Limit()), nil
}

func newInvoiceResult(invoice *trade.Invoice, voucher *finance.CashFlowVoucher) *DocumentResult[InvoiceResponse] {
	result := &DocumentResult[InvoiceResponse]{Document: ToInvoiceResponse(invoice)}
	if voucher != nil {
		id := voucher.ID
		result.VoucherID = &id
		result.VoucherNumber = voucher.VoucherNumber
	}
	return result
}
