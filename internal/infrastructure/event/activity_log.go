package event

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"go.uber.org/zap"
)

// ActivityLog writes one structured line per committed commerce event
type ActivityLog struct {
	logger *zap.Logger
}

// NewActivityLog creates an activity log handler
func NewActivityLog(logger *zap.Logger) *ActivityLog {
	return &ActivityLog{logger: logger.Named("activity")}
}

// EventTypes subscribes to every event
func (a *ActivityLog) EventTypes() []string { return nil }

// Handle logs the event with the fields that identify what changed
func (a *ActivityLog) Handle(_ context.Context, event shared.DomainEvent) error {
	fields := []zap.Field{
		zap.String("event_type", event.EventType()),
		zap.String("tenant_id", event.TenantID().String()),
		zap.String("aggregate_id", event.AggregateID().String()),
	}
	switch e := event.(type) {
	case *trade.DocumentEvent:
		fields = append(fields, zap.String("document_number", e.DocumentNumber), zap.String("total", e.TotalAmount.String()))
	case *trade.PaymentRecordedEvent:
		fields = append(fields,
			zap.String("document_number", e.DocumentNumber),
			zap.String("amount", e.Amount.String()),
			zap.String("outstanding", e.Outstanding.String()))
	case *finance.VoucherRecordedEvent:
		fields = append(fields,
			zap.String("voucher_number", e.VoucherNumber),
			zap.String("category", string(e.Category)),
			zap.String("amount", e.Amount.String()))
	case *inventory.StockChangedEvent:
		fields = append(fields,
			zap.String("operation_type", string(e.OperationType)),
			zap.Int64("change", e.ChangeAmount),
			zap.Int64("balance_after", e.BalanceAfter),
			zap.String("reference", e.Reference))
	case *partner.DebtAdjustedEvent:
		fields = append(fields, zap.String("delta", e.Delta.String()), zap.String("balance_after", e.BalanceAfter.String()))
	}
	a.logger.Info("commerce event", fields...)
	return nil
}

var _ shared.EventHandler = (*ActivityLog)(nil)
