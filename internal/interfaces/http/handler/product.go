package handler

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog API endpoints
type ProductHandler struct {
	BaseHandler
	products *commerce.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products *commerce.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Create godoc
// @Summary      Create a product
// @Description  Creates a product. A positive initial_stock is posted to the stock ledger.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body commerce.CreateProductInput true "Product"
// @Success      201 {object} dto.Response{data=commerce.ProductResponse}
// @Failure      409 {object} dto.Response "SKU already exists"
// @Router       /catalog/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	tenantID, userID, ok := h.caller(c)
	if !ok {
		return
	}
	var req commerce.CreateProductInput
	if !h.bindJSON(c, &req) {
		return
	}

	product, err := h.products.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// List godoc
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        search    query string false "Accent-insensitive search on sku and name"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Page size"
// @Success      200 {object} dto.Response{data=[]commerce.ProductResponse}
// @Router       /catalog/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var query commerce.ListQuery
	if !h.bindQuery(c, &query) {
		return
	}

	page, err := h.products.List(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetByID godoc
// @Summary      Get a product
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=commerce.ProductResponse}
// @Failure      404 {object} dto.Response
// @Router       /catalog/products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update godoc
// @Summary      Update a product
// @Description  A stock value different from the current one is recorded as a MANUAL_ADJUST ledger entry.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Product ID"
// @Param        request body commerce.UpdateProductInput true "Changes"
// @Success      200 {object} dto.Response{data=commerce.ProductResponse}
// @Router       /catalog/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req commerce.UpdateProductInput
	if !h.bindJSON(c, &req) {
		return
	}

	product, err := h.products.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// StockHistory godoc
// @Summary      List stock ledger entries of a product
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=[]commerce.StockHistoryResponse}
// @Router       /catalog/products/{id}/stock-history [get]
func (h *ProductHandler) StockHistory(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var query commerce.ListQuery
	if !h.bindQuery(c, &query) {
		return
	}

	page, err := h.products.StockHistory(c.Request.Context(), tenantID, id, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// VerifyStock compares the stored stock with the sum of its ledger
func (h *ProductHandler) VerifyStock(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.products.VerifyStock(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
