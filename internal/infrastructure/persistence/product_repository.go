package persistence

import (
	"bytes"
	"context"
	"slices"
	"strings"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForTenant finds a product by ID within a tenant
func (r *GormProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	return r.first(forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id))
}

// FindByIDForUpdate finds a product and locks its row
func (r *GormProductRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	return r.first(lockForUpdate(forTenant(r.db.WithContext(ctx), tenantID)).Where("id = ?", id))
}

// LockByIDs locks every listed product in one statement, in ascending id
// order. A missing id fails with NOT_FOUND for that product.
func (r *GormProductRepository) LockByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	sorted = slices.Compact(sorted)

	var rows []models.ProductModel
	query := lockForUpdate(forTenant(r.db.WithContext(ctx), tenantID)).
		Where("id IN ?", sorted).
		Order("id")
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	products := make([]catalog.Product, len(rows))
	found := make(map[uuid.UUID]bool, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
		found[products[i].ID] = true
	}
	for _, id := range sorted {
		if !found[id] {
			return nil, shared.NewNotFoundError("product", id)
		}
	}
	return products, nil
}

// FindBySKU finds a product by SKU within a tenant
func (r *GormProductRepository) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*catalog.Product, error) {
	return r.first(forTenant(r.db.WithContext(ctx), tenantID).Where("sku = ?", strings.ToUpper(strings.TrimSpace(sku))))
}

func (r *GormProductRepository) first(query *gorm.DB) (*catalog.Product, error) {
	var model models.ProductModel
	if err := query.First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists products for a tenant
func (r *GormProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var rows []models.ProductModel
	query := applyPaging(r.filtered(ctx, tenantID, filter), filter, ProductSortFields, "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	products := make([]catalog.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products, nil
}

// CountForTenant counts products matching the filter
func (r *GormProductRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormProductRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := forTenant(r.db.WithContext(ctx).Model(&models.ProductModel{}), tenantID)
	if filter.Search != "" {
		query = query.Where("LOWER(sku) LIKE ? OR search_name LIKE ?",
			likePattern(filter.Search), "%"+catalog.NormalizeSearchText(filter.Search)+"%")
	}
	if category, ok := filter.Filters["category"].(string); ok && category != "" {
		query = query.Where("category = ?", category)
	}
	return query
}

// ExistsBySKU checks whether a SKU is taken within a tenant
func (r *GormProductRepository) ExistsBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (bool, error) {
	var count int64
	err := forTenant(r.db.WithContext(ctx).Model(&models.ProductModel{}), tenantID).
		Where("sku = ?", strings.ToUpper(strings.TrimSpace(sku))).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return translateError(r.db.WithContext(ctx).Save(models.ProductModelFromDomain(product)).Error)
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
