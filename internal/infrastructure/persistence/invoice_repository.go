package persistence

import (
	"context"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceRepository implements trade.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByIDForTenant finds an invoice with its lines
func (r *GormInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Invoice, error) {
	return r.first(forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id))
}

// FindByIDForUpdate finds an invoice and locks its header row
func (r *GormInvoiceRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*trade.Invoice, error) {
	return r.first(lockForUpdate(forTenant(r.db.WithContext(ctx), tenantID)).Where("id = ?", id))
}

func (r *GormInvoiceRepository) first(query *gorm.DB) (*trade.Invoice, error) {
	var model models.InvoiceModel
	if err := query.Preload("Lines", orderedLines).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists invoices without lines
func (r *GormInvoiceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.Invoice, error) {
	var rows []models.InvoiceModel
	query := applyPaging(r.filtered(ctx, tenantID, filter), filter, DocumentSortFields, "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return invoices(rows), nil
}

// CountForTenant counts invoices matching the filter
func (r *GormInvoiceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormInvoiceRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := forTenant(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), tenantID)
	return searchDocuments(query, filter, "customer_name", "customer_id")
}

// FindOverdueCandidates lists unpaid or partially paid invoices due before asOf
func (r *GormInvoiceRepository) FindOverdueCandidates(ctx context.Context, tenantID uuid.UUID, asOf time.Time) ([]trade.Invoice, error) {
	var rows []models.InvoiceModel
	err := forTenant(r.db.WithContext(ctx), tenantID).
		Where("status IN ?", []string{string(trade.InvoiceStatusUnpaid), string(trade.InvoiceStatusPartiallyPaid)}).
		Where("due_date IS NOT NULL AND due_date < ?", asOf).
		Order("due_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return invoices(rows), nil
}

// SumOutstandingByCustomer sums total minus paid over non-cancelled invoices
func (r *GormInvoiceRepository) SumOutstandingByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (decimal.Decimal, error) {
	query := forTenant(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), tenantID).
		Where("customer_id = ? AND status <> ?", customerID, string(trade.InvoiceStatusCancelled))
	return sumOutstanding(query)
}

// Save upserts the header and replaces its lines
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *trade.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceLines(tx, "invoice_id", model.ID, model.Lines)
	})
	return translateDocumentError(err)
}

func invoices(rows []models.InvoiceModel) []trade.Invoice {
	out := make([]trade.Invoice, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

var _ trade.InvoiceRepository = (*GormInvoiceRepository)(nil)
