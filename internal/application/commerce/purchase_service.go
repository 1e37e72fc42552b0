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

// PurchaseService handles goods received from suppliers
type PurchaseService struct {
	exec  *executor
	reads TransactionalRepositories
}

// Create receives goods: stock comes in per line, each product takes the line
// cost as its latest cost, the unpaid part is added to the supplier's debt and
// any payment is written as a PURCHASE payment voucher.
func (s *PurchaseService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreatePurchaseInput) (*DocumentResult[PurchaseResponse], error) {
	var (
		purchase *trade.Purchase
		voucher  *finance.CashFlowVoucher
	)
	err := s.exec.run(ctx, "PurchaseService", "Create", tenantID, func(u *unitOfWork) error {
		ids := make([]uuid.UUID, len(input.Lines))
		for i, in := range input.Lines {
			ids[i] = in.ProductID
		}
		products, err := u.lockProducts(ids)
		if err != nil {
			return err
		}

		lines := make([]trade.PurchaseLine, 0, len(input.Lines))
		for _, in := range input.Lines {
			product := products[in.ProductID]
			line, err := trade.NewPurchaseLine(product.ID, product.SKU, product.Name, product.Unit, in.Quantity, in.CostPrice)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}
		supplier, err := u.repos.Suppliers().FindByIDForUpdate(u.ctx, tenantID, input.SupplierID)
		if err != nil {
			return err
		}

		number, err := u.nextNumber(sequence.DocumentTypePurchase)
		if err != nil {
			return err
		}
		purchase, err = trade.NewPurchase(tenantID, number, supplier.ID, supplier.Name, lines, input.PaidAmount, input.Note)
		if err != nil {
			return err
		}
		purchase.SetCreatedBy(userID)

		for _, line := range purchase.Lines {
			product, err := u.repos.Products().FindByIDForUpdate(u.ctx, tenantID, line.ProductID)
			if err != nil {
				return err
			}
			if err := product.UpdateCostPrice(line.CostPrice); err != nil {
				return err
			}
			if err := u.repos.Products().Save(u.ctx, product); err != nil {
				return err
			}
			if _, err := u.changeStock(line.ProductID, line.Quantity, inventory.OperationPurchaseIn, number, ""); err != nil {
				return err
			}
		}
		if err := u.adjustSupplierDebt(supplier.ID, purchase.Outstanding()); err != nil {
			return err
		}
		if input.PaidAmount.IsPositive() {
			voucher, err = u.appendVoucher(finance.VoucherDetails{
				Type:                finance.VoucherTypePayment,
				Category:            finance.CategoryPurchase,
				Amount:              input.PaidAmount,
				CounterpartyName:    supplier.Name,
				CounterpartyAddress: supplier.Address,
				Description:         "paid to supplier for " + number,
				Reference:           number,
			})
			if err != nil {
				return err
			}
		}

		if err := u.repos.Purchases().Save(u.ctx, purchase); err != nil {
			return err
		}
		u.collect(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newPurchaseResult(purchase, voucher), nil
}

// RecordPayment pays down a purchase. The supplier's debt drops by the amount
// and a SUPPLIER_PAYMENT voucher is written.
func (s *PurchaseService) RecordPayment(ctx context.Context, tenantID, id uuid.UUID, input RecordPaymentInput) (*DocumentResult[PurchaseResponse], error) {
	var (
		purchase *trade.Purchase
		voucher  *finance.CashFlowVoucher
	)
	err := s.exec.run(ctx, "PurchaseService", "RecordPayment", tenantID, func(u *unitOfWork) error {
		var err error
		purchase, err = u.repos.Purchases().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := purchase.RecordPayment(input.Amount); err != nil {
			return err
		}
		if err := u.adjustSupplierDebt(purchase.SupplierID, input.Amount.Neg()); err != nil {
			return err
		}
		description := "supplier payment for " + purchase.PurchaseNumber
		if input.Note != "" {
			description += ": " + input.Note
		}
		voucher, err = u.appendVoucher(finance.VoucherDetails{
			Type:             finance.VoucherTypePayment,
			Category:         finance.CategorySupplierPayment,
			Amount:           input.Amount,
			CounterpartyName: purchase.SupplierName,
			Description:      description,
			Reference:        purchase.PurchaseNumber,
		})
		if err != nil {
			return err
		}
		if err := u.repos.Purchases().Save(u.ctx, purchase); err != nil {
			return err
		}
		u.collect(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newPurchaseResult(purchase, voucher), nil
}

// Return sends the goods back. Stock leaves per line and may fail with
// INSUFFICIENT_STOCK; the supplier's debt drops by the full purchase total.
func (s *PurchaseService) Return(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseResponse, error) {
	var purchase *trade.Purchase
	err := s.exec.run(ctx, "PurchaseService", "Return", tenantID, func(u *unitOfWork) error {
		var err error
		purchase, err = u.repos.Purchases().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if purchase.IsReturned() {
			return shared.NewInvalidTransitionError("purchase "+purchase.PurchaseNumber, string(purchase.Status), "return")
		}
		if _, err := u.lockProducts(purchaseLineProducts(purchase.Lines)); err != nil {
			return err
		}
		for _, line := range purchase.Lines {
			if _, err := u.changeStock(line.ProductID, -line.Quantity, inventory.OperationReturnOut, purchase.PurchaseNumber, ""); err != nil {
				return err
			}
		}
		if err := u.adjustSupplierDebt(purchase.SupplierID, purchase.TotalAmount.Neg()); err != nil {
			return err
		}
		if err := purchase.Return(); err != nil {
			return err
		}
		if err := u.repos.Purchases().Save(u.ctx, purchase); err != nil {
			return err
		}
		u.collect(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseResponse(purchase)
	return &resp, nil
}

// GetByID returns one purchase with its lines
func (s *PurchaseService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*PurchaseResponse, error) {
	purchase, err := s.reads.Purchases().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseResponse(purchase)
	return &resp, nil
}

// List lists purchases
func (s *PurchaseService) List(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[PurchaseResponse], error) {
	filter := query.ToFilter()
	purchases, err := s.reads.Purchases().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PurchaseResponse]{}, err
	}
	total, err := s.reads.Purchases().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[PurchaseResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(purchases, ToPurchaseResponse), total, filter.Page, filter.Limit()), nil
}

func newPurchaseResult(purchase *trade.Purchase, voucher *finance.CashFlowVoucher) *DocumentResult[PurchaseResponse] {
	result := &DocumentResult[PurchaseResponse]{Document: ToPurchaseResponse(purchase)}
	if voucher != nil {
		id := voucher.ID
		result.VoucherID = &id
		result.VoucherNumber = voucher.VoucherNumber
	}
	return result
}
