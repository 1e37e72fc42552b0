package commerce

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
)

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
		SellPrice: p.SellPrice,
		CostPrice: p.CostPrice,
		VATRate:   p.VATRate,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Version:   p.Version,
	}
}

// ToStockHistoryResponse converts a ledger entry
func ToStockHistoryResponse(e *inventory.StockHistoryEntry) StockHistoryResponse {
	return StockHistoryResponse{
		ID:            e.ID,
		ProductID:     e.ProductID,
		ProductName:   e.ProductName,
		ChangeAmount:  e.ChangeAmount,
		BalanceAfter:  e.BalanceAfter,
		OperationType: string(e.OperationType),
		Reference:     e.Reference,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
	}
}

func toContactResponse(c partner.Contact, d partner.DebtBalance) PartyResponse {
	return PartyResponse{
		Code:    c.Code,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		TaxCode: c.TaxCode,
		Note:    c.Note,
		Debt:    d.Debt,
	}
}

// ToCustomerResponse converts a domain Customer to PartyResponse
func ToCustomerResponse(c *partner.Customer) PartyResponse {
	r := toContactResponse(c.Contact, c.DebtBalance)
	r.ID = c.ID
	r.CreatedAt = c.CreatedAt
	r.UpdatedAt = c.UpdatedAt
	return r
}

// ToSupplierResponse converts a domain Supplier to PartyResponse
func ToSupplierResponse(s *partner.Supplier) PartyResponse {
	r := toContactResponse(s.Contact, s.DebtBalance)
	r.ID = s.ID
	r.CreatedAt = s.CreatedAt
	r.UpdatedAt = s.UpdatedAt
	return r
}

func toSaleLineResponses(lines []trade.SaleLine) []SaleLineResponse {
	out := make([]SaleLineResponse, len(lines))
	for i, l := range lines {
		out[i] = SaleLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductSKU:  l.ProductSKU,
			ProductName: l.ProductName,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			CostPrice:   l.CostPrice,
			Amount:      l.Amount(),
		}
	}
	return out
}

// ToQuoteResponse converts a domain Quote to QuoteResponse
func ToQuoteResponse(q *trade.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		CustomerID:       q.CustomerID,
		CustomerName:     q.CustomerName,
		Status:           string(q.Status),
		ValidUntil:       q.ValidUntil,
		Note:             q.Note,
		TotalAmount:      q.TotalAmount,
		ConvertedOrderID: q.ConvertedOrderID,
		Lines:            toSaleLineResponses(q.Lines),
		CreatedAt:        q.CreatedAt,
	}
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *trade.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		QuoteID:      o.QuoteID,
		Status:       string(o.Status),
		Note:         o.Note,
		TotalAmount:  o.TotalAmount,
		PaidAmount:   o.PaidAmount,
		InvoiceID:    o.InvoiceID,
		Lines:        toSaleLineResponses(o.Lines),
		CreatedAt:    o.CreatedAt,
	}
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(i *trade.Invoice) InvoiceResponse {
	r := InvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		CustomerID:    i.CustomerID,
		CustomerName:  i.CustomerName,
		OrderID:       i.OrderID,
		Status:        string(i.Status),
		InvoiceDate:   i.InvoiceDate,
		DueDate:       i.DueDate,
		Note:          i.Note,
		SubTotal:      i.SubTotal,
		ShipFee:       i.ShipFee,
		TotalAmount:   i.TotalAmount,
		PaidAmount:    i.PaidAmount,
		Outstanding:   i.Outstanding(),
		CancelReason:  i.CancelReason,
		CancelledAt:   i.CancelledAt,
		Lines:         toSaleLineResponses(i.Lines),
	}
	if d := i.Delivery; d != nil {
		r.Delivery = &DeliveryResponse{
			ReceiverName:  d.ReceiverName,
			ReceiverPhone: d.ReceiverPhone,
			Address:       d.Address,
			Shipper:       d.Shipper,
			ShipFee:       d.ShipFee,
			Status:        string(d.Status),
		}
	}
	return r
}

// ToPurchaseResponse converts a domain Purchase to PurchaseResponse
func ToPurchaseResponse(p *trade.Purchase) PurchaseResponse {
	lines := make([]PurchaseLineResponse, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = PurchaseLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductSKU:  l.ProductSKU,
			ProductName: l.ProductName,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			CostPrice:   l.CostPrice,
			Amount:      l.Amount(),
		}
	}
	return PurchaseResponse{
		ID:             p.ID,
		PurchaseNumber: p.PurchaseNumber,
		SupplierID:     p.SupplierID,
		SupplierName:   p.SupplierName,
		Status:         string(p.Status),
		PurchaseDate:   p.PurchaseDate,
		Note:           p.Note,
		TotalAmount:    p.TotalAmount,
		PaidAmount:     p.PaidAmount,
		Outstanding:    p.Outstanding(),
		ReturnedAt:     p.ReturnedAt,
		Lines:          lines,
	}
}

// ToCheckResponse converts a domain InventoryCheck to CheckResponse
func ToCheckResponse(c *inventory.InventoryCheck) CheckResponse {
	lines := make([]CheckLineResponse, len(c.Items))
	for i := range c.Items {
		item := &c.Items[i]
		lines[i] = CheckLineResponse{
			ID:               item.ID,
			ProductID:        item.ProductID,
			ProductSKU:       item.ProductSKU,
			ProductName:      item.ProductName,
			Unit:             item.Unit,
			BookQuantity:     item.BookQuantity,
			CountedQuantity:  item.CountedQuantity,
			Difference:       item.Difference(),
			UnitCost:         item.UnitCost,
			DifferenceAmount: item.DifferenceAmount(),
			Remark:           item.Remark,
		}
	}
	return CheckResponse{
		ID:          c.ID,
		CheckNumber: c.CheckNumber,
		CheckDate:   c.CheckDate,
		Status:      string(c.Status),
		Note:        c.Note,
		CompletedAt: c.CompletedAt,
		Lines:       lines,
	}
}

// ToVoucherResponse converts a domain CashFlowVoucher to VoucherResponse
func ToVoucherResponse(v *finance.CashFlowVoucher) VoucherResponse {
	return VoucherResponse{
		ID:                  v.ID,
		VoucherNumber:       v.VoucherNumber,
		Type:                string(v.Type),
		Category:            string(v.Category),
		Source:              string(v.Source),
		Amount:              v.Amount,
		VoucherDate:         v.VoucherDate,
		CounterpartyName:    v.CounterpartyName,
		CounterpartyAddress: v.CounterpartyAddress,
		Description:         v.Description,
		InputVAT:            v.InputVAT,
		Reference:           v.Reference,
		CreatedAt:           v.CreatedAt,
	}
}

func mapSlice[S any, R any](items []S, fn func(*S) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
