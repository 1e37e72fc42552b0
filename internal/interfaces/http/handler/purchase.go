package handler

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles goods receipt endpoints
type PurchaseHandler struct {
	BaseHandler
	purchases *commerce.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(purchases *commerce.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

// Create handles POST /trade/purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	tenantID, userID, ok := h.caller(c)
	if !ok {
		return
	}
	var req commerce.CreatePurchaseInput
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.purchases.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List handles GET /trade/purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var query commerce.ListQuery
	if !h.bindQuery(c, &query) {
		return
	}
	page, err := h.purchases.List(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetByID handles GET /trade/purchases/:id
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	purchase, err := h.purchases.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchase)
}

// RecordPayment handles POST /trade/purchases/:id/payments
func (h *PurchaseHandler) RecordPayment(c *gin.Context) {
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
	result, err := h.purchases.RecordPayment(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Return sends the received goods back to the supplier
func (h *PurchaseHandler) Return(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	purchase, err := h.purchases.Return(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchase)
}
