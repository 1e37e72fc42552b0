package persistence

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryCheckRepository implements inventory.InventoryCheckRepository
type GormInventoryCheckRepository struct {
	db *gorm.DB
}

// NewGormInventoryCheckRepository creates a new GormInventoryCheckRepository
func NewGormInventoryCheckRepository(db *gorm.DB) *GormInventoryCheckRepository {
	return &GormInventoryCheckRepository{db: db}
}

// FindByIDForTenant finds a check with its lines
func (r *GormInventoryCheckRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*inventory.InventoryCheck, error) {
	return r.first(forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id))
}

// FindByIDForUpdate finds a check and locks its header row
func (r *GormInventoryCheckRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*inventory.InventoryCheck, error) {
	return r.first(lockForUpdate(forTenant(r.db.WithContext(ctx), tenantID)).Where("id = ?", id))
}

func (r *GormInventoryCheckRepository) first(query *gorm.DB) (*inventory.InventoryCheck, error) {
	var model models.InventoryCheckModel
	if err := query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("product_sku ASC")
	}).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists checks without lines
func (r *GormInventoryCheckRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]inventory.InventoryCheck, error) {
	var rows []models.InventoryCheckModel
	query := applyPaging(r.filtered(ctx, tenantID, filter), filter, InventoryCheckSortFields, "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	checks := make([]inventory.InventoryCheck, len(rows))
	for i := range rows {
		checks[i] = *rows[i].ToDomain()
	}
	return checks, nil
}

// CountForTenant counts checks matching the filter
func (r *GormInventoryCheckRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormInventoryCheckRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := forTenant(r.db.WithContext(ctx).Model(&models.InventoryCheckModel{}), tenantID)
	if filter.Search != "" {
		query = query.Where("LOWER(document_number) LIKE ?", likePattern(filter.Search))
	}
	return applyStatus(query, filter)
}

// Save upserts the header and replaces its lines
func (r *GormInventoryCheckRepository) Save(ctx context.Context, check *inventory.InventoryCheck) error {
	model := models.InventoryCheckModelFromDomain(check)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		return replaceLines(tx, "check_id", model.ID, model.Items)
	})
	return translateDocumentError(err)
}

// DeleteForTenant deletes a check and its lines.
// Lines go first; a check outside the tenant rolls the delete back.
func (r *GormInventoryCheckRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("check_id = ?", id).Delete(&models.InventoryCheckItemModel{}).Error; err != nil {
			return err
		}
		result := forTenant(tx, tenantID).Where("id = ?", id).Delete(&models.InventoryCheckModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	}))
}

var _ inventory.InventoryCheckRepository = (*GormInventoryCheckRepository)(nil)
