package telemetry

import (
	"context"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestCommerceMetrics_Handle(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewCommerceMetrics(provider.Meter("test"))
	require.NoError(t, err)
	assert.Nil(t, m.EventTypes())

	ctx := context.Background()
	tenantID := uuid.New()
	id := uuid.New()

	require.NoError(t, m.Handle(ctx, trade.NewDocumentEvent(trade.EventTypeInvoiceCreated, trade.AggregateTypeInvoice, id, tenantID, "HD-00001", decimal.NewFromInt(500000))))
	require.NoError(t, m.Handle(ctx, trade.NewDocumentEvent(trade.EventTypeInvoiceCreated, trade.AggregateTypeInvoice, uuid.New(), tenantID, "HD-00002", decimal.NewFromInt(10))))
	require.NoError(t, m.Handle(ctx, trade.NewPaymentRecordedEvent(trade.EventTypeInvoicePaymentRecorded, trade.AggregateTypeInvoice, id, tenantID, "HD-00001", decimal.NewFromInt(200000), decimal.NewFromInt(300000))))
	require.NoError(t, m.Handle(ctx, inventory.NewStockChangedEvent(&inventory.StockHistoryEntry{
		TenantID:      tenantID,
		ProductID:     uuid.New(),
		ChangeAmount:  -3,
		BalanceAfter:  97,
		OperationType: inventory.OperationSaleOut,
		Reference:     "HD-00001",
	})))

	data := collect(t, reader)

	docs, ok := data["commerce_documents_total"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, docs.DataPoints, 1)
	assert.Equal(t, int64(2), docs.DataPoints[0].Value)

	payments, ok := data["commerce_payments_amount"].(metricdata.Sum[float64])
	require.True(t, ok)
	assert.InDelta(t, 200000.0, payments.DataPoints[0].Value, 0.001)

	stock, ok := data["commerce_stock_units_moved"].(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(3), stock.DataPoints[0].Value)

	_, ok = data["commerce_voucher_amount"]
	assert.False(t, ok, "no voucher recorded yet")
}
