package handler

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles sales order endpoints
type OrderHandler struct {
	BaseHandler
	orders *commerce.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *commerce.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /trade/orders
func (h *OrderHandler) Create(c *gin.Context) {
	tenantID, userID, ok := h.caller(c)
	if !ok {
		return
	}
	var req commerce.CreateOrderInput
	if !h.bindJSON(c, &req) {
		return
	}
	order, err := h.orders.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List handles GET /trade/orders
func (h *OrderHandler) List(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var query commerce.ListQuery
	if !h.bindQuery(c, &query) {
		return
	}
	page, err := h.orders.List(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetByID handles GET /trade/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	order, err := h.orders.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Convert turns the order into an invoice, deducting stock and recording the
// upfront payment. The body is optional; without it nothing is paid.
func (h *OrderHandler) Convert(c *gin.Context) {
	tenantID, userID, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req commerce.ConvertOrderInput
	if !h.bindOptionalJSON(c, &req) {
		return
	}
	result, err := h.orders.ConvertToInvoice(c.Request.Context(), tenantID, userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
