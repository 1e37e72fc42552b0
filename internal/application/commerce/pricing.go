package commerce

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/google/uuid"
)

// lockProducts takes the row locks for every product an operation will move,
// in ascending id order, before the party and sequence rows are touched.
// Lock order across the package: document, products, party, sequences.
func (u *unitOfWork) lockProducts(ids []uuid.UUID) (map[uuid.UUID]*catalog.Product, error) {
	products, err := u.repos.Products().LockByIDs(u.ctx, u.tenantID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID, nil
}

// priceSaleLines turns requested lines into sale lines. Price and VAT fall back
// to the product's current values and the product cost is snapshotted.
// With lock set the products are locked first and a line asking for more than
// is on hand fails with INSUFFICIENT_STOCK.
func (u *unitOfWork) priceSaleLines(inputs []SaleLineInput, lock bool) ([]trade.SaleLine, error) {
	products, err := u.loadProducts(inputs, lock)
	if err != nil {
		return nil, err
	}

	wanted := make(map[uuid.UUID]int64, len(products))
	lines := make([]trade.SaleLine, 0, len(inputs))
	for _, in := range inputs {
		product := products[in.ProductID]
		price := product.SellPrice
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}
		vat := product.VATRate
		if in.VATRate != nil {
			vat = *in.VATRate
		}
		line, err := trade.NewSaleLine(product.ID, product.SKU, product.Name, product.Unit, in.Quantity, price, vat)
		if err != nil {
			return nil, err
		}
		line.CostPrice = product.CostPrice
		lines = append(lines, line)

		wanted[product.ID] += in.Quantity
		if lock && !product.HasStock(wanted[product.ID]) {
			return nil, shared.NewInsufficientStockError(product.ID, product.Name, product.Stock, wanted[product.ID])
		}
	}
	return lines, nil
}

func (u *unitOfWork) loadProducts(inputs []SaleLineInput, lock bool) (map[uuid.UUID]*catalog.Product, error) {
	ids := make([]uuid.UUID, len(inputs))
	for i, in := range inputs {
		ids[i] = in.ProductID
	}
	if lock {
		return u.lockProducts(ids)
	}
	products := make(map[uuid.UUID]*catalog.Product, len(ids))
	for _, id := range ids {
		if _, ok := products[id]; ok {
			continue
		}
		product, err := u.repos.Products().FindByIDForTenant(u.ctx, u.tenantID, id)
		if err != nil {
			return nil, err
		}
		products[id] = product
	}
	return products, nil
}

func saleLineProducts(lines []trade.SaleLine) []uuid.UUID {
	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.ProductID
	}
	return ids
}

func purchaseLineProducts(lines []trade.PurchaseLine) []uuid.UUID {
	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.ProductID
	}
	return ids
}
