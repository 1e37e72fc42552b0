package persistence

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseRepository implements trade.PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByIDForTenant finds a purchase with its lines
func (r *GormPurchaseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Purchase, error) {
	return r.first(forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id))
}

// FindByIDForUpdate finds a purchase and locks its header row
func (r *GormPurchaseRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*trade.Purchase, error) {
	return r.first(lockForUpdate(forTenant(r.db.WithContext(ctx), tenantID)).Where("id = ?", id))
}

func (r *GormPurchaseRepository) first(query *gorm.DB) (*trade.Purchase, error) {
	var model models.PurchaseModel
	if err := query.Preload("Lines", orderedLines).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists purchases without lines
func (r *GormPurchaseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.Purchase, error) {
	var rows []models.PurchaseModel
	query := applyPaging(r.filtered(ctx, tenantID, filter), filter, DocumentSortFields, "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	purchases := make([]trade.Purchase, len(rows))
	for i := range rows {
		purchases[i] = *rows[i].ToDomain()
	}
	return purchases, nil
}

// CountForTenant counts purchases matching the filter
func (r *GormPurchaseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormPurchaseRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := forTenant(r.db.WithContext(ctx).Model(&models.PurchaseModel{}), tenantID)
	return searchDocuments(query, filter, "supplier_name", "supplier_id")
}

// SumOutstandingBySupplier sums total minus paid over non-returned purchases
func (r *GormPurchaseRepository) SumOutstandingBySupplier(ctx context.Context, tenantID, supplierID uuid.UUID) (decimal.Decimal, error) {
	query := forTenant(r.db.WithContext(ctx).Model(&models.PurchaseModel{}), tenantID).
		Where("supplier_id = ? AND status <> ?", supplierID, string(trade.PurchaseStatusReturned))
	return sumOutstanding(query)
}

// Save upserts the header and replaces its lines
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *trade.Purchase) error {
	model := models.PurchaseModelFromDomain(purchase)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceLines(tx, "purchase_id", model.ID, model.Lines)
	})
	return translateDocumentError(err)
}

var _ trade.PurchaseRepository = (*GormPurchaseRepository)(nil)
