package commerce

import (
	"context"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/sequence"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// unitOfWork is the state of one commerce transaction. Events collected here
// are published only after the transaction commits.
type unitOfWork struct {
	ctx      context.Context
	tenantID uuid.UUID
	repos    TransactionalRepositories
	ledger   *StockLedger
	debts    *DebtAccounts
	vouchers *VoucherLog
	events   []shared.DomainEvent
}

func (u *unitOfWork) nextNumber(docType sequence.DocumentType) (string, error) {
	return u.repos.Sequences().Next(u.ctx, u.tenantID, docType)
}

func (u *unitOfWork) changeStock(productID uuid.UUID, delta int64, op inventory.OperationType, reference, note string) (int64, error) {
	entry, err := u.ledger.ChangeStock(u.ctx, u.repos, u.tenantID, StockChange{
		ProductID: productID,
		Delta:     delta,
		Operation: op,
		Reference: reference,
		Note:      note,
	})
	if err != nil {
		return 0, err
	}
	if entry == nil {
		return 0, nil
	}
	u.emit(inventory.NewStockChangedEvent(entry))
	return entry.BalanceAfter, nil
}

func (u *unitOfWork) adjustCustomerDebt(customerID uuid.UUID, delta decimal.Decimal) error {
	event, err := u.debts.AdjustCustomer(u.ctx, u.repos, u.tenantID, customerID, delta)
	if err != nil {
		return err
	}
	u.emit(event)
	return nil
}

func (u *unitOfWork) adjustSupplierDebt(supplierID uuid.UUID, delta decimal.Decimal) error {
	event, err := u.debts.AdjustSupplier(u.ctx, u.repos, u.tenantID, supplierID, delta)
	if err != nil {
		return err
	}
	u.emit(event)
	return nil
}

func (u *unitOfWork) appendVoucher(details finance.VoucherDetails) (*finance.CashFlowVoucher, error) {
	if details.VoucherDate.IsZero() {
		details.VoucherDate = time.Now()
	}
	voucher, err := u.vouchers.Append(u.ctx, u.repos, u.tenantID, finance.VoucherSourceAuto, details)
	if err != nil {
		return nil, err
	}
	u.collect(voucher)
	return voucher, nil
}

func (u *unitOfWork) collect(aggregates ...shared.AggregateRoot) {
	u.events = append(u.events, shared.DrainEvents(aggregates...)...)
}

func (u *unitOfWork) emit(events ...shared.DomainEvent) {
	for _, e := range events {
		if e != nil {
			u.events = append(u.events, e)
		}
	}
}

// executor runs commerce operations in a transaction with tracing, profiling
// labels and logging, then publishes the collected events.
type executor struct {
	scope     TransactionScope
	publisher shared.EventPublisher
	logger    *zap.Logger
	ledger    *StockLedger
	debts     *DebtAccounts
	vouchers  *VoucherLog
}

func newExecutor(scope TransactionScope, publisher shared.EventPublisher, logger *zap.Logger) *executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &executor{
		scope:     scope,
		publisher: publisher,
		logger:    logger,
		ledger:    NewStockLedger(),
		debts:     NewDebtAccounts(),
		vouchers:  NewVoucherLog(),
	}
}

func (e *executor) run(ctx context.Context, service, operation string, tenantID uuid.UUID, fn func(u *unitOfWork) error) error {
	ctx, span := telemetry.StartServiceSpan(ctx, service, operation, telemetry.TenantAttr(tenantID))
	defer span.End()

	var (
		events []shared.DomainEvent
		err    error
	)
	labels := telemetry.OperationLabels(service+"."+operation, map[string]string{
		telemetry.ProfilingLabelTenantID: tenantID.String(),
	})
	telemetry.WithProfilingLabels(ctx, labels, func(c context.Context) {
		err = e.scope.Execute(c, func(repos TransactionalRepositories) error {
			u := &unitOfWork{
				ctx:      c,
				tenantID: tenantID,
				repos:    repos,
				ledger:   e.ledger,
				debts:    e.debts,
				vouchers: e.vouchers,
			}
			if err := fn(u); err != nil {
				return err
			}
			events = u.events
			return nil
		})
	})

	if err != nil {
		telemetry.RecordError(span, err)
		e.logger.Warn("commerce operation rejected",
			zap.String("operation", service+"."+operation),
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err))
		return err
	}

	telemetry.SetOK(span)
	e.logger.Info("commerce operation completed",
		zap.String("operation", service+"."+operation),
		zap.String("tenant_id", tenantID.String()),
		zap.Int("events", len(events)))
	e.publish(ctx, events)
	return nil
}

// publish hands committed events to the bus. Handler failures are logged by the
// bus and never undo a committed operation.
func (e *executor) publish(ctx context.Context, events []shared.DomainEvent) {
	if e.publisher == nil || len(events) == 0 {
		return
	}
	if err := e.publisher.Publish(ctx, events...); err != nil {
		e.logger.Error("failed to publish domain events", zap.Error(err), zap.Int("count", len(events)))
	}
}
