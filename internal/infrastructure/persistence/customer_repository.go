package persistence

import (
	"context"
	"strings"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/catalog"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/partner"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByIDForTenant finds a customer by ID within a tenant
func (r *GormCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	return r.first(forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id))
}

// FindByIDForUpdate finds a customer and locks its row
func (r *GormCustomerRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	return r.first(lockForUpdate(forTenant(r.db.WithContext(ctx), tenantID)).Where("id = ?", id))
}

func (r *GormCustomerRepository) first(query *gorm.DB) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := query.First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists customers of a tenant
func (r *GormCustomerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	query := applyPaging(r.filtered(ctx, tenantID, filter), filter, PartySortFields, "created_at")
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	out := make([]partner.Customer, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// CountForTenant counts customers matching the filter
func (r *GormCustomerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormCustomerRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) *gorm.DB {
	return searchParties(forTenant(r.db.WithContext(ctx).Model(&models.CustomerModel{}), tenantID), filter)
}

// ExistsByCode checks whether a code is taken within a tenant
func (r *GormCustomerRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	var count int64
	err := forTenant(r.db.WithContext(ctx).Model(&models.CustomerModel{}), tenantID).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return translateError(r.db.WithContext(ctx).Save(models.CustomerModelFromDomain(customer)).Error)
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)

// searchParties matches filter.Search against code, phone or accent-folded name
func searchParties(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}
	return query.Where("LOWER(code) LIKE ? OR phone LIKE ? OR search_name LIKE ?",
		likePattern(filter.Search),
		"%"+strings.TrimSpace(filter.Search)+"%",
		"%"+catalog.NormalizeSearchText(filter.Search)+"%")
}
