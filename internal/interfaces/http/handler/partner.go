package handler

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartnerHandler handles customer and supplier endpoints.
// Debt balances are read-only here; they only move through documents and payments.
type PartnerHandler struct {
	BaseHandler
	partners *commerce.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partners *commerce.PartnerService) *PartnerHandler {
	return &PartnerHandler{partners: partners}
}

type (
	createPartyFunc func(ctx context.Context, tenantID, userID uuid.UUID, input commerce.PartyInput) (*commerce.PartyResponse, error)
	updatePartyFunc func(ctx context.Context, tenantID, id uuid.UUID, input commerce.PartyInput) (*commerce.PartyResponse, error)
	getPartyFunc    func(ctx context.Context, tenantID, id uuid.UUID) (*commerce.PartyResponse, error)
	listPartyFunc   func(ctx context.Context, tenantID uuid.UUID, query commerce.ListQuery) (shared.Paginated[commerce.PartyResponse], error)
)

// CreateCustomer handles POST /partners/customers
func (h *PartnerHandler) CreateCustomer(c *gin.Context) { h.create(c, h.partners.CreateCustomer) }

// UpdateCustomer handles PUT /partners/customers/:id
func (h *PartnerHandler) UpdateCustomer(c *gin.Context) { h.update(c, h.partners.UpdateCustomer) }

// GetCustomer handles GET /partners/customers/:id
func (h *PartnerHandler) GetCustomer(c *gin.Context) { h.get(c, h.partners.GetCustomer) }

// ListCustomers handles GET /partners/customers
func (h *PartnerHandler) ListCustomers(c *gin.Context) { h.list(c, h.partners.ListCustomers) }

// ReconcileCustomer compares the stored debt with the outstanding invoices
func (h *PartnerHandler) ReconcileCustomer(c *gin.Context) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	result, err := h.partners.ReconcileCustomer(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateSupplier handles POST /partners/suppliers
func (h *PartnerHandler) CreateSupplier(c *gin.Context) { h.create(c, h.partners.CreateSupplier) }

// UpdateSupplier handles PUT /partners/suppliers/:id
func (h *PartnerHandler) UpdateSupplier(c *gin.Context) { h.update(c, h.partners.UpdateSupplier) }

// GetSupplier handles GET /partners/suppliers/:id
func (h *PartnerHandler) GetSupplier(c *gin.Context) { h.get(c, h.partners.GetSupplier) }

// ListSuppliers handles GET /partners/suppliers
func (h *PartnerHandler) ListSuppliers(c *gin.Context) { h.list(c, h.partners.ListSuppliers) }

func (h *PartnerHandler) create(c *gin.Context, fn createPartyFunc) {
	tenantID, userID, ok := h.caller(c)
	if !ok {
		return
	}
	var req commerce.PartyInput
	if !h.bindJSON(c, &req) {
		return
	}
	party, err := fn(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, party)
}

func (h *PartnerHandler) update(c *gin.Context, fn updatePartyFunc) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req commerce.PartyInput
	if !h.bindJSON(c, &req) {
		return
	}
	party, err := fn(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, party)
}

func (h *PartnerHandler) get(c *gin.Context, fn getPartyFunc) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	party, err := fn(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, party)
}

func (h *PartnerHandler) list(c *gin.Context, fn listPartyFunc) {
	tenantID, _, ok := h.caller(c)
	if !ok {
		return
	}
	var query commerce.ListQuery
	if !h.bindQuery(c, &query) {
		return
	}
	page, err := fn(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Page(c, page)
}
