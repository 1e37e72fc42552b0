package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "managersale/commerce"

// SpanAttrTenantID is set on every commerce operation span
const SpanAttrTenantID = "tenant_id"

// StartServiceSpan opens an internal span named "<service>.<method>" on the
// global provider. The caller ends it.
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, service+"."+method,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...))
}

func TenantAttr(tenantID uuid.UUID) attribute.KeyValue {
	return attribute.String(SpanAttrTenantID, tenantID.String())
}

// RecordError attaches err as a span event and fails the span. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func SetOK(span trace.Span) { span.SetStatus(codes.Ok, "") }
