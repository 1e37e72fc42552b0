// Package middleware provides the gin middleware of the commerce API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// Tracing opens a server span per request through otelgin, named after the
// route template ("POST /api/v1/trade/invoices/:id/payments").
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if cfg.Enabled {
		return otelgin.Middleware(cfg.ServiceName)
	}
	return func(c *gin.Context) { c.Next() }
}

// TracingAttributeInjector tags the request span with the caller identity.
// It only sees the tenant once Authenticate has run.
func TracingAttributeInjector() gin.HandlerFunc {
	return func(c *gin.Context) {
		if span := trace.SpanFromContext(c.Request.Context()); span.IsRecording() {
			span.SetAttributes(identityAttributes(c)...)
		}
		c.Next()
	}
}

func identityAttributes(c *gin.Context) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if id := GetRequestID(c); id != "" {
		attrs = append(attrs, attribute.String("request_id", id))
	}
	if tenantID, ok := GetTenantID(c); ok {
		attrs = append(attrs, attribute.String("tenant_id", tenantID.String()))
	}
	if userID := GetUserID(c); userID != uuid.Nil {
		attrs = append(attrs, attribute.String("user_id", userID.String()))
	}
	return attrs
}

// SpanErrorMarker fails the span on 5xx only. Rejections such as
// insufficient stock or overpayment answer 4xx and leave the status unset.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
