package commerce

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListQuery represents paging and search options shared by list endpoints
type ListQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToFilter converts the query into a repository filter
func (q ListQuery) ToFilter() shared.Filter {
	f := shared.DefaultFilter()
	if q.Page > 0 {
		f.Page = q.Page
	}
	if q.PageSize > 0 {
		f.PageSize = q.PageSize
	}
	if q.OrderBy != "" {
		f.OrderBy = q.OrderBy
	}
	if q.OrderDir != "" {
		f.OrderDir = q.OrderDir
	}
	f.Search = q.Search
	if q.Status != "" {
		f.Filters["status"] = q.Status
	}
	return f
}

// ---------------------------------------------------------------------------
// Catalog

// CreateProductInput is the payload for creating a product
type CreateProductInput struct {
	SKU          string          `json:"sku" binding:"required,max=50"`
	Name         string          `json:"name" binding:"required,max=200"`
	Category     string          `json:"category" binding:"max=100"`
	Unit         string          `json:"unit" binding:"required,max=20"`
	SellPrice    decimal.Decimal `json:"sell_price" binding:"money"`
	CostPrice    decimal.Decimal `json:"cost_price" binding:"money"`
	VATRate      decimal.Decimal `json:"vat_rate" binding:"money"`
	InitialStock int64           `json:"initial_stock" binding:"min=0"`
}

// UpdateProductInput is the payload for editing a product.
// A Stock different from the current balance is posted to the ledger as MANUAL_ADJUST.
type UpdateProductInput struct {
	Name      string           `json:"name" binding:"required,max=200"`
	Category  string           `json:"category" binding:"max=100"`
	Unit      string           `json:"unit" binding:"required,max=20"`
	SellPrice *decimal.Decimal `json:"sell_price" binding:"omitempty,money"`
	CostPrice *decimal.Decimal `json:"cost_price" binding:"omitempty,money"`
	VATRate   *decimal.Decimal `json:"vat_rate" binding:"omitempty,money"`
	Stock     *int64           `json:"stock" binding:"omitempty,min=0"`
	Note      string           `json:"note" binding:"max=500"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	SellPrice decimal.Decimal `json:"sell_price"`
	CostPrice decimal.Decimal `json:"cost_price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

// StockHistoryResponse represents one ledger entry
type StockHistoryResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	ChangeAmount  int64     `json:"change_amount"`
	BalanceAfter  int64     `json:"balance_after"`
	OperationType string    `json:"operation_type"`
	Reference     string    `json:"reference"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockReconciliation compares stored stock against the ledger
type StockReconciliation struct {
	ProductID  uuid.UUID `json:"product_id"`
	Stock      int64     `json:"stock"`
	LedgerSum  int64     `json:"ledger_sum"`
	Consistent bool      `json:"consistent"`
}

// ---------------------------------------------------------------------------
// Partners

// PartyInput is the payload for creating or editing a customer or supplier
type PartyInput struct {
	Code    string `json:"code" binding:"required,max=50"`
	Name    string `json:"name" binding:"required,max=200"`
	Phone   string `json:"phone" binding:"max=30"`
	Email   string `json:"email" binding:"omitempty,email,max=100"`
	Address string `json:"address" binding:"max=300"`
	TaxCode string `json:"tax_code" binding:"max=30"`
	Note    string `json:"note" binding:"max=500"`
}

// PartyResponse represents a customer or supplier; Debt is read-only
type PartyResponse struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	TaxCode   string          `json:"tax_code"`
	Note      string          `json:"note"`
	Debt      decimal.Decimal `json:"debt"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DebtReconciliation compares a stored debt balance against open documents
type DebtReconciliation struct {
	PartyID     uuid.UUID       `json:"party_id"`
	Debt        decimal.Decimal `json:"debt"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Consistent  bool            `json:"consistent"`
}

// ---------------------------------------------------------------------------
// Sales documents

// SaleLineInput is one requested sale line. Price and VAT default to the product's.
type SaleLineInput struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int64            `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price" binding:"omitempty,money"`
	VATRate   *decimal.Decimal `json:"vat_rate" binding:"omitempty,money"`
}

// SaleLineResponse represents a sale line
type SaleLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductSKU  string          `json:"product_sku"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateQuoteInput is the payload for creating a quote
type CreateQuoteInput struct {
	CustomerID uuid.UUID       `json:"customer_id" binding:"required"`
	Lines      []SaleLineInput `json:"lines" binding:"required,min=1,dive"`
	ValidUntil *time.Time      `json:"valid_until"`
	Note       string          `json:"note" binding:"max=500"`
}

// QuoteResponse represents a quote
type QuoteResponse struct {
	ID               uuid.UUID          `json:"id"`
	QuoteNumber      string             `json:"quote_number"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	CustomerName     string             `json:"customer_name"`
	Status           string             `json:"status"`
	ValidUntil       *time.Time         `json:"valid_until,omitempty"`
	Note             string             `json:"note"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	ConvertedOrderID *uuid.UUID         `json:"converted_order_id,omitempty"`
	Lines            []SaleLineResponse `json:"lines,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// CreateOrderInput is the payload for entering an order directly
type CreateOrderInput struct {
	CustomerID uuid.UUID       `json:"customer_id" binding:"required"`
	Lines      []SaleLineInput `json:"lines" binding:"required,min=1,dive"`
	Note       string          `json:"note" binding:"max=500"`
}

// ConvertOrderInput is the payload for turning an order into an invoice
type ConvertOrderInput struct {
	PaymentAmount decimal.Decimal `json:"payment_amount" binding:"money"`
	DueDate       *time.Time      `json:"due_date"`
}

// OrderResponse represents an order
type OrderResponse struct {
	ID           uuid.UUID          `json:"id"`
	OrderNumber  string             `json:"order_number"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	QuoteID      *uuid.UUID         `json:"quote_id,omitempty"`
	Status       string             `json:"status"`
	Note         string             `json:"note"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	PaidAmount   decimal.Decimal    `json:"paid_amount"`
	InvoiceID    *uuid.UUID         `json:"invoice_id,omitempty"`
	Lines        []SaleLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// DeliveryInput requests shipping of a point-of-sale invoice
type DeliveryInput struct {
	ReceiverName  string          `json:"receiver_name" binding:"required,max=200"`
	ReceiverPhone string          `json:"receiver_phone" binding:"max=30"`
	Address       string          `json:"address" binding:"required,max=300"`
	Shipper       string          `json:"shipper" binding:"max=100"`
	ShipFee       decimal.Decimal `json:"ship_fee" binding:"money"`
}

// CreateInvoiceInput is the point-of-sale payload. CustomerID is empty for walk-in sales.
type CreateInvoiceInput struct {
	CustomerID *uuid.UUID      `json:"customer_id"`
	Lines      []SaleLineInput `json:"lines" binding:"required,min=1,dive"`
	PaidAmount decimal.Decimal `json:"paid_amount" binding:"money"`
	Delivery   *DeliveryInput  `json:"delivery"`
	DueDate    *time.Time      `json:"due_date"`
	Note       string          `json:"note" binding:"max=500"`
}

// RecordPaymentInput is the payload for paying down an invoice or purchase
type RecordPaymentInput struct {
	Amount decimal.Decimal `json:"amount" binding:"money"`
	Note   string          `json:"note" binding:"max=500"`
}

// ReturnInvoiceInput is the payload for returning an invoice
type ReturnInvoiceInput struct {
	Reason string `json:"reason" binding:"max=500"`
}

// DeliveryResponse represents the shipping sub-document
type DeliveryResponse struct {
	ReceiverName  string          `json:"receiver_name"`
	ReceiverPhone string          `json:"receiver_phone"`
	Address       string          `json:"address"`
	Shipper       string          `json:"shipper"`
	ShipFee       decimal.Decimal `json:"ship_fee"`
	Status        string          `json:"status"`
}

// InvoiceResponse represents an invoice
type InvoiceResponse struct {
	ID            uuid.UUID          `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	OrderID       *uuid.UUID         `json:"order_id,omitempty"`
	Status        string             `json:"status"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	DueDate       *time.Time         `json:"due_date,omitempty"`
	Note          string             `json:"note"`
	SubTotal      decimal.Decimal    `json:"sub_total"`
	ShipFee       decimal.Decimal    `json:"ship_fee"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaidAmount    decimal.Decimal    `json:"paid_amount"`
	Outstanding   decimal.Decimal    `json:"outstanding"`
	Delivery      *DeliveryResponse  `json:"delivery,omitempty"`
	CancelReason  string             `json:"cancel_reason,omitempty"`
	CancelledAt   *time.Time         `json:"cancelled_at,omitempty"`
	Lines         []SaleLineResponse `json:"lines,omitempty"`
}

// DocumentResult is returned by operations that may write a voucher.
// VoucherID drives the "print invoice" / "print voucher" choice of the caller.
type DocumentResult[T any] struct {
	Document      T          `json:"document"`
	VoucherID     *uuid.UUID `json:"voucher_id,omitempty"`
	VoucherNumber string     `json:"voucher_number,omitempty"`
}

// OverdueSweepResult reports how many invoices were flipped to OVERDUE
type OverdueSweepResult struct {
	Marked int       `json:"marked"`
	AsOf   time.Time `json:"as_of"`
}

// ---------------------------------------------------------------------------
// Purchases

// PurchaseLineInput is one received line
type PurchaseLineInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,min=1"`
	CostPrice decimal.Decimal `json:"cost_price" binding:"money"`
}

// CreatePurchaseInput is the payload for receiving goods
type CreatePurchaseInput struct {
	SupplierID uuid.UUID           `json:"supplier_id" binding:"required"`
	Lines      []PurchaseLineInput `json:"lines" binding:"required,min=1,dive"`
	PaidAmount decimal.Decimal     `json:"paid_amount" binding:"money"`
	Note       string              `json:"note" binding:"max=500"`
}

// PurchaseLineResponse represents a purchase line
type PurchaseLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductSKU  string          `json:"product_sku"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseResponse represents a purchase
type PurchaseResponse struct {
	ID             uuid.UUID              `json:"id"`
	PurchaseNumber string                 `json:"purchase_number"`
	SupplierID     uuid.UUID              `json:"supplier_id"`
	SupplierName   string                 `json:"supplier_name"`
	Status         string                 `json:"status"`
	PurchaseDate   time.Time              `json:"purchase_date"`
	Note           string                 `json:"note"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	PaidAmount     decimal.Decimal        `json:"paid_amount"`
	Outstanding    decimal.Decimal        `json:"outstanding"`
	ReturnedAt     *time.Time             `json:"returned_at,omitempty"`
	Lines          []PurchaseLineResponse `json:"lines,omitempty"`
}

// ---------------------------------------------------------------------------
// Inventory checks

// CheckLineInput is one counted product
type CheckLineInput struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	CountedQuantity int64     `json:"counted_quantity" binding:"min=0"`
	Remark          string    `json:"remark" binding:"max=300"`
}

// CreateCheckInput is the payload for drafting an inventory check
type CreateCheckInput struct {
	CheckDate *time.Time       `json:"check_date"`
	Note      string           `json:"note" binding:"max=500"`
	Lines     []CheckLineInput `json:"lines" binding:"required,min=1,dive"`
}

// UpdateCheckInput edits a draft. Lines for new products are added with a fresh
// book snapshot, existing ones get their count replaced, and RemoveProductIDs are dropped.
type UpdateCheckInput struct {
	Note             *string          `json:"note" binding:"omitempty,max=500"`
	Lines            []CheckLineInput `json:"lines" binding:"dive"`
	RemoveProductIDs []uuid.UUID      `json:"remove_product_ids"`
}

// CheckLineResponse represents a counted line
type CheckLineResponse struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	ProductSKU       string          `json:"product_sku"`
	ProductName      string          `json:"product_name"`
	Unit             string          `json:"unit"`
	BookQuantity     int64           `json:"book_quantity"`
	CountedQuantity  int64           `json:"counted_quantity"`
	Difference       int64           `json:"difference"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	DifferenceAmount decimal.Decimal `json:"difference_amount"`
	Remark           string          `json:"remark"`
}

// CheckResponse represents an inventory check
type CheckResponse struct {
	ID          uuid.UUID           `json:"id"`
	CheckNumber string              `json:"check_number"`
	CheckDate   time.Time           `json:"check_date"`
	Status      string              `json:"status"`
	Note        string              `json:"note"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	Lines       []CheckLineResponse `json:"lines,omitempty"`
}

// ---------------------------------------------------------------------------
// Vouchers

// VoucherInput is the payload for a manual voucher
type VoucherInput struct {
	Type                string           `json:"type" binding:"required,oneof=RECEIPT PAYMENT"`
	Category            string           `json:"category" binding:"required"`
	Amount              decimal.Decimal  `json:"amount" binding:"money"`
	VoucherDate         *time.Time       `json:"voucher_date"`
	CounterpartyName    string           `json:"counterparty_name" binding:"max=200"`
	CounterpartyAddress string           `json:"counterparty_address" binding:"max=300"`
	Description         string           `json:"description" binding:"max=500"`
	InputVAT            *decimal.Decimal `json:"input_vat" binding:"omitempty,money"`
	Reference           string           `json:"reference" binding:"max=50"`
}

// VoucherListQuery adds voucher-specific filters to ListQuery
type VoucherListQuery struct {
	ListQuery
	Type     string     `form:"type" binding:"omitempty,oneof=RECEIPT PAYMENT"`
	Category string     `form:"category"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
}

// VoucherResponse represents a cash-flow voucher
type VoucherResponse struct {
	ID                  uuid.UUID        `json:"id"`
	VoucherNumber       string           `json:"voucher_number"`
	Type                string           `json:"type"`
	Category            string           `json:"category"`
	Source              string           `json:"source"`
	Amount              decimal.Decimal  `json:"amount"`
	VoucherDate         time.Time        `json:"voucher_date"`
	CounterpartyName    string           `json:"counterparty_name"`
	CounterpartyAddress string           `json:"counterparty_address"`
	Description         string           `json:"description"`
	InputVAT            *decimal.Decimal `json:"input_vat,omitempty"`
	Reference           string           `json:"reference"`
	CreatedAt           time.Time        `json:"created_at"`
}
