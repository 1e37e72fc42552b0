package commerce

import (
	"context"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/google/uuid"
)

// InvoiceService handles point-of-sale invoices, debt collection and returns
type InvoiceService struct {
	exec  *executor
	reads TransactionalRepositories
}

// Create records a point-of-sale invoice. CustomerID may be empty for a
// walk-in sale, which must then be paid in full.
func (s *InvoiceService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateInvoiceInput) (*DocumentResult[InvoiceResponse], error) {
	var (
		invoice *trade.Invoice
		voucher *finance.CashFlowVoucher
	)
	err := s.exec.run(ctx, "InvoiceService", "Create", tenantID, func(u *unitOfWork) error {
		var delivery *trade.Delivery
		if d := input.Delivery; d != nil {
			var err error
			delivery, err = trade.NewDelivery(d.ReceiverName, d.ReceiverPhone, d.Address, d.Shipper, d.ShipFee)
			if err != nil {
				return err
			}
		}

		lines, err := u.priceSaleLines(input.Lines, true)
		if err != nil {
			return err
		}
		var customer *partner.Customer
		if input.CustomerID != nil && *input.CustomerID != uuid.Nil {
			customer, err = u.repos.Customers().FindByIDForUpdate(u.ctx, tenantID, *input.CustomerID)
			if err != nil {
				return err
			}
		}
		number, err := u.nextNumber(sequence.DocumentTypeInvoice)
		if err != nil {
			return err
		}

		params := trade.InvoiceParams{
			Number:       number,
			CustomerName: "walk-in customer",
			Lines:        lines,
			Delivery:     delivery,
			PaidAmount:   input.PaidAmount,
			DueDate:      input.DueDate,
			Note:         input.Note,
		}
		if customer != nil {
			id := customer.ID
			params.CustomerID = &id
			params.CustomerName = customer.Name
		}
		invoice, err = trade.NewInvoice(tenantID, params)
		if err != nil {
			return err
		}
		invoice.SetCreatedBy(userID)

		for _, line := range invoice.Lines {
			if _, err := u.changeStock(line.ProductID, -line.Quantity, inventory.OperationSaleOut, number, ""); err != nil {
				return err
			}
		}
		if customer != nil {
			if err := u.adjustCustomerDebt(customer.ID, invoice.Outstanding()); err != nil {
				return err
			}
		}
		if input.PaidAmount.IsPositive() {
			details := finance.VoucherDetails{
				Type:             finance.VoucherTypeReceipt,
				Category:         finance.CategorySale,
				Amount:           input.PaidAmount,
				CounterpartyName: invoice.CustomerName,
				Description:      "payment for invoice " + number,
				Reference:        number,
			}
			if customer != nil {
				details.CounterpartyAddress = customer.Address
			}
			voucher, err = u.appendVoucher(details)
			if err != nil {
				return err
			}
		}

		if err := u.repos.Invoices().Save(u.ctx, invoice); err != nil {
			return err
		}
		u.collect(invoice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newInvoiceResult(invoice, voucher), nil
}

// RecordPayment collects part or all of an invoice's outstanding amount.
// The customer's debt drops by the amount and a DEBT_COLLECTION receipt is written.
func (s *InvoiceService) RecordPayment(ctx context.Context, tenantID, id uuid.UUID, input RecordPaymentInput) (*DocumentResult[InvoiceResponse], error) {
	var (
		invoice *trade.Invoice
		voucher *finance.CashFlowVoucher
	)
	err := s.exec.run(ctx, "InvoiceService", "RecordPayment", tenantID, func(u *unitOfWork) error {
		var err error
		invoice, err = u.repos.Invoices().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := invoice.RecordPayment(input.Amount); err != nil {
			return err
		}

		details := finance.VoucherDetails{
			Type:             finance.VoucherTypeReceipt,
			Category:         finance.CategoryDebtCollection,
			Amount:           input.Amount,
			CounterpartyName: invoice.CustomerName,
			Description:      "debt payment for " + invoice.InvoiceNumber,
			Reference:        invoice.InvoiceNumber,
		}
		if invoice.HasCustomer() {
			if err := u.adjustCustomerDebt(*invoice.CustomerID, input.Amount.Neg()); err != nil {
				return err
			}
		}
		if input.Note != "" {
			details.Description += ": " + input.Note
		}
		voucher, err = u.appendVoucher(details)
		if err != nil {
			return err
		}

		if err := u.repos.Invoices().Save(u.ctx, invoice); err != nil {
			return err
		}
		u.collect(invoice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newInvoiceResult(invoice, voucher), nil
}

// Return soft-cancels an invoice and reverses its effects in one transaction:
// stock comes back per line, the unpaid remainder leaves the customer's debt and
// any paid amount is refunded with a REFUND payment voucher.
func (s *InvoiceService) Return(ctx context.Context, tenantID, id uuid.UUID, input ReturnInvoiceInput) (*DocumentResult[InvoiceResponse], error) {
	var (
		invoice *trade.Invoice
		voucher *finance.CashFlowVoucher
	)
	err := s.exec.run(ctx, "InvoiceService", "Return", tenantID, func(u *unitOfWork) error {
		var err error
		invoice, err = u.repos.Invoices().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if invoice.IsCancelled() {
			return shared.NewInvalidTransitionError("invoice "+invoice.InvoiceNumber, string(invoice.Status), "return")
		}
		if _, err := u.lockProducts(saleLineProducts(invoice.Lines)); err != nil {
			return err
		}

		for _, line := range invoice.Lines {
			if _, err := u.changeStock(line.ProductID, line.Quantity, inventory.OperationReturnIn, invoice.InvoiceNumber, input.Reason); err != nil {
				return err
			}
		}
		if unpaid := invoice.Outstanding(); invoice.HasCustomer() && unpaid.IsPositive() {
			if err := u.adjustCustomerDebt(*invoice.CustomerID, unpaid.Neg()); err != nil {
				return err
			}
		}
		if invoice.PaidAmount.IsPositive() {
			voucher, err = u.appendVoucher(finance.VoucherDetails{
				Type:             finance.VoucherTypePayment,
				Category:         finance.CategoryRefund,
				Amount:           invoice.PaidAmount,
				CounterpartyName: invoice.CustomerName,
				Description:      "refund for returned invoice " + invoice.InvoiceNumber,
				Reference:        invoice.InvoiceNumber,
			})
			if err != nil {
				return err
			}
		}

		if err := invoice.Cancel(input.Reason); err != nil {
			return err
		}
		if err := u.repos.Invoices().Save(u.ctx, invoice); err != nil {
			return err
		}
		u.collect(invoice)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newInvoiceResult(invoice, voucher), nil
}

// MarkOverdue flips every open invoice of the tenant whose due date is before
// asOf to OVERDUE. Running it twice changes nothing the second time.
func (s *InvoiceService) MarkOverdue(ctx context.Context, tenantID uuid.UUID, asOf time.Time) (*OverdueSweepResult, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}
	marked := 0
	err := s.exec.run(ctx, "InvoiceService", "MarkOverdue", tenantID, func(u *unitOfWork) error {
		candidates, err := u.repos.Invoices().FindOverdueCandidates(u.ctx, tenantID, asOf)
		if err != nil {
			return err
		}
		for i := range candidates {
			invoice, err := u.repos.Invoices().FindByIDForUpdate(u.ctx, tenantID, candidates[i].ID)
			if err != nil {
				return err
			}
			if !invoice.MarkOverdue(asOf) {
				continue
			}
			if err := u.repos.Invoices().Save(u.ctx, invoice); err != nil {
				return err
			}
			marked++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &OverdueSweepResult{Marked: marked, AsOf: asOf}, nil
}

// GetByID returns one invoice with its lines
func (s *InvoiceService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.reads.Invoices().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List lists invoices
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[InvoiceResponse], error) {
	filter := query.ToFilter()
	invoices, err := s.reads.Invoices().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[InvoiceResponse]{}, err
	}
	total, err := s.reads.Invoices().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[InvoiceResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(invoices, ToInvoiceResponse), total, filter.Page, filter.Limit()), nil
}
