package router

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/dto"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

// routeGroup is the set of routes of one business area
type routeGroup struct {
	name   string
	prefix string
	routes []route
}

func newGroup(name, prefix string) *routeGroup {
	return &routeGroup{name: name, prefix: prefix}
}

func (g *routeGroup) handle(method, path string, h gin.HandlerFunc) *routeGroup {
	g.routes = append(g.routes, route{method: method, path: path, handler: h})
	return g
}

func (g *routeGroup) GET(path string, h gin.HandlerFunc) *routeGroup    { return g.handle("GET", path, h) }
func (g *routeGroup) POST(path string, h gin.HandlerFunc) *routeGroup   { return g.handle("POST", path, h) }
func (g *routeGroup) PUT(path string, h gin.HandlerFunc) *routeGroup    { return g.handle("PUT", path, h) }
func (g *routeGroup) DELETE(path string, h gin.HandlerFunc) *routeGroup { return g.handle("DELETE", path, h) }

func (g *routeGroup) register(rg *gin.RouterGroup) {
	group := rg.Group(g.prefix)
	for _, r := range g.routes {
		group.Handle(r.method, r.path, r.handler)
	}
}

func routeGroups(h Handlers) []*routeGroup {
	catalog := newGroup("catalog", "/catalog").
		POST("/products", h.Products.Create).
		GET("/products", h.Products.List).
		GET("/products/:id", h.Products.GetByID).
		PUT("/products/:id", h.Products.Update).
		GET("/products/:id/stock-history", h.Products.StockHistory).
		GET("/products/:id/verify-stock", h.Products.VerifyStock)

	partners := newGroup("partners", "/partners").
		POST("/customers", h.Partners.CreateCustomer).
		GET("/customers", h.Partners.ListCustomers).
		GET("/customers/:id", h.Partners.GetCustomer).
		PUT("/customers/:id", h.Partners.UpdateCustomer).
		POST("/customers/:id/reconcile", h.Partners.ReconcileCustomer).
		POST("/suppliers", h.Partners.CreateSupplier).
		GET("/suppliers", h.Partners.ListSuppliers).
		GET("/suppliers/:id", h.Partners.GetSupplier).
		PUT("/suppliers/:id", h.Partners.UpdateSupplier)

	trade := newGroup("trade", "/trade").
		POST("/quotes", h.Quotes.Create).
		GET("/quotes", h.Quotes.List).
		GET("/quotes/:id", h.Quotes.GetByID).
		POST("/quotes/:id/send", h.Quotes.Send).
		POST("/quotes/:id/convert", h.Quotes.Convert).
		POST("/orders", h.Orders.Create).
		GET("/orders", h.Orders.List).
		GET("/orders/:id", h.Orders.GetByID).
		POST("/orders/:id/convert", h.Orders.Convert).
		POST("/invoices", h.Invoices.Create).
		GET("/invoices", h.Invoices.List).
		POST("/invoices/overdue-sweep", h.Invoices.OverdueSweep).
		GET("/invoices/:id", h.Invoices.GetByID).
		POST("/invoices/:id/payments", h.Invoices.RecordPayment).
		POST("/invoices/:id/return", h.Invoices.Return).
		POST("/purchases", h.Purchases.Create).
		GET("/purchases", h.Purchases.List).
		GET("/purchases/:id", h.Purchases.GetByID).
		POST("/purchases/:id/payments", h.Purchases.RecordPayment).
		POST("/purchases/:id/return", h.Purchases.Return)

	inventory := newGroup("inventory", "/inventory").
		POST("/checks", h.Checks.Create).
		GET("/checks", h.Checks.List).
		GET("/checks/:id", h.Checks.GetByID).
		PUT("/checks/:id", h.Checks.Update).
		DELETE("/checks/:id", h.Checks.Delete).
		POST("/checks/:id/complete", h.Checks.Complete)

	finance := newGroup("finance", "/finance").
		POST("/vouchers", h.Vouchers.Create).
		GET("/vouchers", h.Vouchers.List).
		GET("/vouchers/:id", h.Vouchers.GetByID).
		PUT("/vouchers/:id", h.Vouchers.Update).
		DELETE("/vouchers/:id", h.Vouchers.Delete)

	return []*routeGroup{catalog, partners, trade, inventory, finance}
}

func notFoundBody(c *gin.Context) dto.Response {
	resp := dto.NewErrorResponse(dto.ErrCodeNotFound, "Route not found")
	resp.Error.RequestID = middleware.GetRequestID(c)
	return resp
}
