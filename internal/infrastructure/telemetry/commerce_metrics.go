package telemetry

import (
	"context"
	"fmt"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CommerceMetrics turns committed domain events into business counters.
// It is registered on the event bus for all event types.
type CommerceMetrics struct {
	documents     metric.Int64Counter
	payments      metric.Float64Counter
	vouchers      metric.Float64Counter
	stockMovement metric.Int64Counter
}

// NewCommerceMetrics registers the commerce instruments on meter
func NewCommerceMetrics(meter metric.Meter) (*CommerceMetrics, error) {
	documents, err := meter.Int64Counter("commerce_documents_total",
		metric.WithDescription("Document lifecycle events by type"))
	if err != nil {
		return nil, fmt.Errorf("documents counter: %w", err)
	}
	payments, err := meter.Float64Counter("commerce_payments_amount",
		metric.WithDescription("Amount paid against invoices and purchases"))
	if err != nil {
		return nil, fmt.Errorf("payments counter: %w", err)
	}
	vouchers, err := meter.Float64Counter("commerce_voucher_amount",
		metric.WithDescription("Cash flow voucher amounts by type and category"))
	if err != nil {
		return nil, fmt.Errorf("vouchers counter: %w", err)
	}
	stockMovement, err := meter.Int64Counter("commerce_stock_units_moved",
		metric.WithDescription("Absolute stock units moved by operation"))
	if err != nil {
		return nil, fmt.Errorf("stock counter: %w", err)
	}
	return &CommerceMetrics{
		documents:     documents,
		payments:      payments,
		vouchers:      vouchers,
		stockMovement: stockMovement,
	}, nil
}

// EventTypes subscribes to every event
func (m *CommerceMetrics) EventTypes() []string {
	return nil
}

// Handle records the event
func (m *CommerceMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *trade.DocumentEvent:
		m.documents.Add(ctx, 1, metric.WithAttributes(attribute.String("event", e.EventType())))
	case *trade.PaymentRecordedEvent:
		m.payments.Add(ctx, e.Amount.InexactFloat64(), metric.WithAttributes(attribute.String("document", e.AggregateType())))
	case *finance.VoucherRecordedEvent:
		m.vouchers.Add(ctx, e.Amount.InexactFloat64(), metric.WithAttributes(
			attribute.String("type", string(e.VoucherType)),
			attribute.String("category", string(e.Category)),
			attribute.String("source", string(e.Source)),
		))
	case *inventory.StockChangedEvent:
		units := e.ChangeAmount
		if units < 0 {
			units = -units
		}
		m.stockMovement.Add(ctx, units, metric.WithAttributes(attribute.String("operation", string(e.OperationType))))
	}
	return nil
}
