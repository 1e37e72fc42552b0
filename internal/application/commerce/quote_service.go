package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteService handles quotes. Quotes never move stock, debt or cash.
type QuoteService struct {
	exec  *executor
	reads TransactionalRepositories
}

// Create prices the lines from the catalog and stores a NEW quote under a BG- number
func (s *QuoteService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateQuoteInput) (*QuoteResponse, error) {
	var quote *trade.Quote
	err := s.exec.run(ctx, "QuoteService", "Create", tenantID, func(u *unitOfWork) error {
		customer, err := u.repos.Customers().FindByIDForTenant(u.ctx, tenantID, input.CustomerID)
		if err != nil {
			return err
		}
		lines, err := u.priceSaleLines(input.Lines, false)
		if err != nil {
			return err
		}
		number, err := u.nextNumber(sequence.DocumentTypeQuote)
		if err != nil {
			return err
		}
		quote, err = trade.NewQuote(tenantID, number, customer.ID, customer.Name, lines, input.Note)
		if err != nil {
			return err
		}
		quote.ValidUntil = input.ValidUntil
		quote.SetCreatedBy(userID)
		if err := u.repos.Quotes().Save(u.ctx, quote); err != nil {
			return err
		}
		u.collect(quote)
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToQuoteResponse(quote)
	return &resp, nil
}

// MarkSent moves a NEW quote to SENT
func (s *QuoteService) MarkSent(ctx context.Context, tenantID, id uuid.UUID) (*QuoteResponse, error) {
	var quote *trade.Quote
	err := s.exec.run(ctx, "QuoteService", "MarkSent", tenantID, func(u *unitOfWork) error {
		var err error
		quote, err = u.repos.Quotes().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := quote.MarkSent(); err != nil {
			return err
		}
		return u.repos.Quotes().Save(u.ctx, quote)
	})
	if err != nil {
		return nil, err
	}
	resp := ToQuoteResponse(quote)
	return &resp, nil
}

// ConvertToOrder creates a DH- order from the quote lines with current product
// costs and marks the quote CONVERTED. A second conversion fails with
// INVALID_TRANSITION because the status is checked on the locked row.
func (s *QuoteService) ConvertToOrder(ctx context.Context, tenantID, userID, id uuid.UUID) (*OrderResponse, error) {
	var order *trade.Order
	err := s.exec.run(ctx, "QuoteService", "ConvertToOrder", tenantID, func(u *unitOfWork) error {
		quote, err := u.repos.Quotes().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := quote.EnsureConvertible(); err != nil {
			return err
		}

		number, err := u.nextNumber(sequence.DocumentTypeOrder)
		if err != nil {
			return err
		}
		order, err = trade.NewOrderFromQuote(number, quote)
		if err != nil {
			return err
		}
		order.SetCreatedBy(userID)
		for _, line := range quote.Lines {
			product, err := u.repos.Products().FindByIDForTenant(u.ctx, tenantID, line.ProductID)
			if err != nil {
				return err
			}
			order.SetCostPrice(product.ID, product.CostPrice)
		}
		if err := u.repos.Orders().Save(u.ctx, order); err != nil {
			return err
		}
		if err := quote.MarkConverted(order.ID); err != nil {
			return err
		}
		if err := u.repos.Quotes().Save(u.ctx, quote); err != nil {
			return err
		}
		u.collect(order, quote)
		s.exec.logger.Info("quote converted",
			zap.String("quote_number", quote.QuoteNumber),
			zap.String("order_number", order.OrderNumber))
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetByID returns one quote with its lines
func (s *QuoteService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.reads.Quotes().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToQuoteResponse(quote)
	return &resp, nil
}

// List lists quotes
func (s *QuoteService) List(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[QuoteResponse], error) {
	filter := query.ToFilter()
	quotes, err := s.reads.Quotes().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[QuoteResponse]{}, err
	}
	total, err := s.reads.Quotes().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[QuoteResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(quotes, ToQuoteResponse), total, filter.Page, filter.Limit()), nil
}
