// Package router assembles the gin engine: the middleware stack and every
// commerce route under /api/v1.
package router

import (
	"net/http"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/application/commerce"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/config"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/logger"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/handler"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	apiPrefix  = "/api/v1"
	healthPath = "/health"
)

// Handlers holds one handler per resource
type Handlers struct {
	Health    *handler.HealthHandler
	Products  *handler.ProductHandler
	Partners  *handler.PartnerHandler
	Quotes    *handler.QuoteHandler
	Orders    *handler.OrderHandler
	Invoices  *handler.InvoiceHandler
	Purchases *handler.PurchaseHandler
	Checks    *handler.InventoryCheckHandler
	Vouchers  *handler.VoucherHandler
}

// NewHandlers builds the handlers over the commerce services
func NewHandlers(services *commerce.Services, db handler.DatabaseProbe, version string) Handlers {
	return Handlers{
		Health:    handler.NewHealthHandler(db, version),
		Products:  handler.NewProductHandler(services.Products),
		Partners:  handler.NewPartnerHandler(services.Partners),
		Quotes:    handler.NewQuoteHandler(services.Quotes),
		Orders:    handler.NewOrderHandler(services.Orders),
		Invoices:  handler.NewInvoiceHandler(services.Invoices),
		Purchases: handler.NewPurchaseHandler(services.Purchases),
		Checks:    handler.NewInventoryCheckHandler(services.Checks),
		Vouchers:  handler.NewVoucherHandler(services.Vouchers),
	}
}

// Options configures the middleware stack
type Options struct {
	Logger      *zap.Logger
	HTTP        config.HTTPConfig
	Auth        middleware.AuthConfig
	Idempotency middleware.IdempotencyConfig
	Tracing     middleware.TracingConfig
	Profiling   middleware.ProfilingConfig
	// Meter may be nil, which disables HTTP metrics
	Meter metric.Meter
}

// New returns an engine serving every route
func New(h Handlers, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(opts.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(opts.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	// order matters: the request id must exist before logging and recovery
	engine.Use(
		middleware.RequestID(),
		middleware.Tracing(opts.Tracing),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(opts.HTTP)),
		middleware.Secure(),
		middleware.BodyLimit(opts.HTTP.MaxBodySize),
		middleware.HTTPMetrics(opts.Meter, log),
	)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, notFoundBody(c))
	})

	engine.GET(healthPath, h.Health.Check)

	auth := opts.Auth
	if auth.Logger == nil {
		auth.Logger = log
	}
	idem := opts.Idempotency
	if idem.Logger == nil {
		idem.Logger = log
	}

	api := engine.Group(apiPrefix)
	// registered before the auth middleware is attached
	api.GET(healthPath, h.Health.Check)
	api.Use(
		middleware.Authenticate(auth),
		middleware.TracingAttributeInjector(),
		middleware.SpanErrorMarker(),
		middleware.Profiling(opts.Profiling),
		middleware.Idempotency(idem),
	)
	for _, g := range routeGroups(h) {
		g.register(api)
	}
	return engine
}
