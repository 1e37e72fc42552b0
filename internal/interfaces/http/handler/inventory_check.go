package handler

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/gin-gonic/gin"
)

// InventoryCheckHandler handles stock count endpoints
type InventoryCheckHandler struct {
	BaseHandler
	checks *commerce.InventoryCheckService
}

// NewInventoryCheckHandler creates a new InventoryCheckHandler
func NewInventoryCheckHandler(checks *commerce.InventoryCheckService) *InventoryCheckHandler {
	return &InventoryCheckHandler{checks: checks}
}

// Create godoc
// @Summary      Start an inventory check
// @Description  Snapshots the system stock of each counted product.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body commerce.CreateCheckInput true "Counted lines"
// @Success      201 {object} dto.Response{data=commerce.CheckResponse}
// @Router       /inventory/checks [post]
func (h *InventoryCheckHandler) Create(c *gin.Context) {
	tenantID, userID, ok := h.caller(c)
	if !ok {
		return
	}
	var req commerce.CreateCheckInput
	if !h.bindJSON(c, &req) {
		return
	}
	check, err := h.checks.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, check)
}

// List godoc
// @Summary      List inventory checks
// @Tags         inventory
// @Produce      json
// @Success      200 {object} dto.Response{data=[]commerce.CheckResponse}
// @Router       /inventory/checks [get]
func (h *InventoryCheckHandler) List(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var query commerce.ListQuery
	if !h.bindQuery(c, &query) {
		return
	}
	page, err := h.checks.List(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}

// GetByID handles GET /inventory/checks/:id
func (h *InventoryCheckHandler) GetByID(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	check, err := h.checks.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, check)
}

// Update replaces the counted lines of a PENDING check
func (h *InventoryCheckHandler) Update(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req commerce.UpdateCheckInput
	if !h.bindJSON(c, &req) {
		return
	}
	check, err := h.checks.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, check)
}

// Complete godoc
// @Summary      Complete an inventory check
// @Description  Sets each product's stock to the counted quantity and records the variance.
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Check ID"
// @Success      200 {object} dto.Response{data=commerce.CheckResponse}
// @Failure      422 {object} dto.Response "Check already completed"
// @Router       /inventory/checks/{id}/complete [post]
func (h *InventoryCheckHandler) Complete(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	check, err := h.checks.Complete(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, check)
}

// Delete handles DELETE /inventory/checks/:id
func (h *InventoryCheckHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.checks.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
