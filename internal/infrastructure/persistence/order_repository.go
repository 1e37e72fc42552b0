package persistence

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/trade"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByIDForTenant finds an order with its lines
func (r *GormOrderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trade.Order, error) {
	return r.first(forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id))
}

// FindByIDForUpdate finds an order and locks its header row
func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*trade.Order, error) {
	return r.first(lockForUpdate(forTenant(r.db.WithContext(ctx), tenantID)).Where("id = ?", id))
}

func (r *GormOrderRepository) first(query *gorm.DB) (*trade.Order, error) {
	var model models.OrderModel
	if err := query.Preload("Lines", orderedLines).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists orders without lines
func (r *GormOrderRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	var rows []models.OrderModel
	query := applyPaging(r.filtered(ctx, tenantID, filter), filter, DocumentSortFields, "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	orders := make([]trade.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

// CountForTenant counts orders matching the filter
func (r *GormOrderRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormOrderRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := forTenant(r.db.WithContext(ctx).Model(&models.OrderModel{}), tenantID)
	return searchDocuments(query, filter, "customer_name", "customer_id")
}

// CountByQuote counts orders created from a quote
func (r *GormOrderRepository) CountByQuote(ctx context.Context, tenantID, quoteID uuid.UUID) (int64, error) {
	var count int64
	err := forTenant(r.db.WithContext(ctx).Model(&models.OrderModel{}), tenantID).
		Where("quote_id = ?", quoteID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// Save upserts the header and replaces its lines
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	model := models.OrderModelFromDomain(order)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceLines(tx, "order_id", model.ID, model.Lines)
	})
	return translateDocumentError(err)
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
