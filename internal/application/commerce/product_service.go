package commerce

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles the product catalog. Stock is never written here
// directly; initial stock and manual corrections go through the ledger.
type ProductService struct {
	exec  *executor
	reads TransactionalRepositories
}

// Create creates a product with zero stock, then posts InitialStock as an INITIAL entry
func (s *ProductService) Create(ctx context.Context, tenantID, userID uuid.UUID, input CreateProductInput) (*ProductResponse, error) {
	var product *catalog.Product
	err := s.exec.run(ctx, "ProductService", "Create", tenantID, func(u *unitOfWork) error {
		var err error
		product, err = catalog.NewProduct(tenantID, input.SKU, input.Name, input.Unit)
		if err != nil {
			return err
		}
		exists, err := u.repos.Products().ExistsBySKU(u.ctx, tenantID, product.SKU)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError(shared.CodeAlreadyExists, "Product with SKU "+product.SKU+" already exists")
		}
		product.Category = input.Category
		product.SetCreatedBy(userID)
		if err := product.SetPrices(input.SellPrice, input.CostPrice); err != nil {
			return err
		}
		if err := product.SetVATRate(input.VATRate); err != nil {
			return err
		}
		if err := u.repos.Products().Save(u.ctx, product); err != nil {
			return err
		}
		u.collect(product)

		if input.InitialStock > 0 {
			balance, err := u.changeStock(product.ID, input.InitialStock, inventory.OperationInitial, product.SKU, "initial stock")
			if err != nil {
				return err
			}
			product.Stock = balance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update edits descriptive fields and prices. A requested stock different from
// the current one is posted as MANUAL_ADJUST with the difference.
func (s *ProductService) Update(ctx context.Context, tenantID, id uuid.UUID, input UpdateProductInput) (*ProductResponse, error) {
	var product *catalog.Product
	err := s.exec.run(ctx, "ProductService", "Update", tenantID, func(u *unitOfWork) error {
		var err error
		product, err = u.repos.Products().FindByIDForUpdate(u.ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := product.Update(input.Name, input.Category, input.Unit); err != nil {
			return err
		}
		sell, cost := product.SellPrice, product.CostPrice
		if input.SellPrice != nil {
			sell = *input.SellPrice
		}
		if input.CostPrice != nil {
			cost = *input.CostPrice
		}
		if err := product.SetPrices(sell, cost); err != nil {
			return err
		}
		if input.VATRate != nil {
			if err := product.SetVATRate(*input.VATRate); err != nil {
				return err
			}
		}
		if err := u.repos.Products().Save(u.ctx, product); err != nil {
			return err
		}
		u.collect(product)

		if input.Stock != nil && *input.Stock != product.Stock {
			note := input.Note
			if note == "" {
				note = "manual stock correction"
			}
			balance, err := u.changeStock(product.ID, *input.Stock-product.Stock, inventory.OperationManualAdjust, product.SKU, note)
			if err != nil {
				return err
			}
			product.Stock = balance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.reads.Products().FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List lists products; search matches SKU or the accent-folded name
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, query ListQuery) (shared.Paginated[ProductResponse], error) {
	filter := query.ToFilter()
	filter.Search = catalog.NormalizeSearchText(filter.Search)
	products, err := s.reads.Products().FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	total, err := s.reads.Products().CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(products, ToProductResponse), total, filter.Page, filter.Limit()), nil
}

// StockHistory lists the ledger entries of a product, newest first
func (s *ProductService) StockHistory(ctx context.Context, tenantID, productID uuid.UUID, query ListQuery) (shared.Paginated[StockHistoryResponse], error) {
	if _, err := s.reads.Products().FindByIDForTenant(ctx, tenantID, productID); err != nil {
		return shared.Paginated[StockHistoryResponse]{}, err
	}
	filter := query.ToFilter()
	entries, err := s.reads.StockHistory().FindByProduct(ctx, tenantID, productID, filter)
	if err != nil {
		return shared.Paginated[StockHistoryResponse]{}, err
	}
	total, err := s.reads.StockHistory().CountByProduct(ctx, tenantID, productID)
	if err != nil {
		return shared.Paginated[StockHistoryResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(entries, ToStockHistoryResponse), total, filter.Page, filter.Limit()), nil
}

// VerifyStock compares the stored stock with the sum of ledger changes
func (s *ProductService) VerifyStock(ctx context.Context, tenantID, productID uuid.UUID) (*StockReconciliation, error) {
	product, err := s.reads.Products().FindByIDForTenant(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	sum, err := s.reads.StockHistory().SumChangesByProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	return &StockReconciliation{
		ProductID:  productID,
		Stock:      product.Stock,
		LedgerSum:  sum,
		Consistent: sum == product.Stock,
	}, nil
}
