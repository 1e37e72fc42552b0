package handler

import (
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles point-of-sale invoice endpoints
type InvoiceHandler struct {
	BaseHandler
	invoices *commerce.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoices *commerce.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// OverdueSweepRequest optionally pins the sweep date, defaulting to now
type OverdueSweepRequest struct {
	AsOf *time.Time `json:"as_of"`
}

// Create godoc
// @Summary      Create a point-of-sale invoice
// @Description  Deducts stock for every line and records paid_amount as a receipt.
// @Description  The unpaid remainder becomes customer debt; walk-in sales must be paid in full.
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay protection key"
// @Param        request body commerce.CreateInvoiceInput true "Invoice"
// @Success      201 {object} dto.Response{data=commerce.DocumentResult[commerce.InvoiceResponse]}
// @Failure      422 {object} dto.Response "Insufficient stock"
// @Router       /trade/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	tenantID, userID, ok := h.caller(c)
	if !ok {
		return
	}
	var req commerce.CreateInvoiceInput
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.invoices.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List godoc
// @Summary      List invoices
// @Tags         trade
// @Produce      json
// @Param        status query string false "UNPAID, PARTIALLY_PAID, PAID, OVERDUE or CANCELLED"
// @Success      200 {object} dto.Response{data=[]commerce.InvoiceResponse}
// @Router       /trade/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var query commerce.ListQuery
	if !h.bindQuery(c, &query) {
		return
	}
	page, err := h.invoices.List(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetByID godoc
// @Summary      Get an invoice
// @Tags         trade
// @Produce      json
// @Param        id path string true "Invoice ID"
// @Success      200 {object} dto.Response{data=commerce.InvoiceResponse}
// @Router       /trade/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	invoice, err := h.invoices.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// RecordPayment godoc
// @Summary      Record a payment against an invoice
// @Description  The amount may not exceed the outstanding balance.
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        id      path string                       true "Invoice ID"
// @Param        request body commerce.RecordPaymentInput true "Payment"
// @Success      200 {object} dto.Response{data=commerce.DocumentResult[commerce.InvoiceResponse]}
// @Failure      422 {object} dto.Response "Overpayment or invalid transition"
// @Router       /trade/invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req commerce.RecordPaymentInput
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.invoices.RecordPayment(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Return godoc
// @Summary      Return (soft-cancel) an invoice
// @Description  Restores stock, reverses the unpaid debt and refunds what was paid.
// @Tags         trade
// @Accept       json
// @Produce      json
// @Param        id      path string                       true  "Invoice ID"
// @Param        request body commerce.ReturnInvoiceInput false "Reason"
// @Success      200 {object} dto.Response{data=commerce.DocumentResult[commerce.InvoiceResponse]}
// @Router       /trade/invoices/{id}/return [post]
func (h *InvoiceHandler) Return(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req commerce.ReturnInvoiceInput
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.invoices.Return(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// OverdueSweep marks open invoices past their due date as OVERDUE
func (h *InvoiceHandler) OverdueSweep(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var req OverdueSweepRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	var asOf time.Time
	if req.AsOf != nil {
		asOf = *req.AsOf
	}
	result, err := h.invoices.MarkOverdue(c.Request.Context(), tenantID, asOf)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
