package handler

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/gin-gonic/gin"
)

// VoucherHandler handles cash-flow voucher endpoints. Vouchers created by
// sales and purchases are listed here too.
type VoucherHandler struct {
	BaseHandler
	vouchers *commerce.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler
func NewVoucherHandler(vouchers *commerce.VoucherService) *VoucherHandler {
	return &VoucherHandler{vouchers: vouchers}
}

// Create godoc
// @Summary      Create a manual voucher
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body commerce.VoucherInput true "Voucher"
// @Success      201 {object} dto.Response{data=commerce.VoucherResponse}
// @Router       /finance/vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var req commerce.VoucherInput
	if !h.bindJSON(c, &req) {
		return
	}
	voucher, err := h.vouchers.CreateManual(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, voucher)
}

// List godoc
// @Summary      List vouchers
// @Tags         finance
// @Produce      json
// @Param        type     query string false "RECEIPT or PAYMENT"
// @Param        category query string false "Category"
// @Param        from     query string false "From date (YYYY-MM-DD)"
// @Param        to       query string false "To date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]commerce.VoucherResponse}
// @Router       /finance/vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var query commerce.VoucherListQuery
	if !h.bindQuery(c, &query) {
		return
	}
	page, err := h.vouchers.List(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetByID handles GET /finance/vouchers/:id
func (h *VoucherHandler) GetByID(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	voucher, err := h.vouchers.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, voucher)
}

// Update handles PUT /finance/vouchers/:id
func (h *VoucherHandler) Update(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req commerce.VoucherInput
	if !h.bindJSON(c, &req) {
		return
	}
	voucher, err := h.vouchers.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, voucher)
}

// Delete handles DELETE /finance/vouchers/:id
func (h *VoucherHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.vouchers.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
