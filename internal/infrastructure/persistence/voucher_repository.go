package persistence

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/finance"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormVoucherRepository implements finance.VoucherRepository.
// Receipts and payments share one table.
type GormVoucherRepository struct {
	db *gorm.DB
}

// NewGormVoucherRepository creates a new GormVoucherRepository
func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

// FindByIDForTenant finds a voucher by ID within a tenant
func (r *GormVoucherRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*finance.CashFlowVoucher, error) {
	var model models.CashFlowVoucherModel
	if err := forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForTenant lists vouchers, newest voucher date first unless the filter orders otherwise
func (r *GormVoucherRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.VoucherFilter) ([]finance.CashFlowVoucher, error) {
	var rows []models.CashFlowVoucherModel
	query := applyPaging(r.filtered(ctx, tenantID, filter), filter.Filter, VoucherSortFields, "voucher_date")
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return vouchers(rows), nil
}

// CountForTenant counts vouchers matching the filter
func (r *GormVoucherRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter finance.VoucherFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, tenantID, filter).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

func (r *GormVoucherRepository) filtered(ctx context.Context, tenantID uuid.UUID, filter finance.VoucherFilter) *gorm.DB {
	query := forTenant(r.db.WithContext(ctx).Model(&models.CashFlowVoucherModel{}), tenantID)
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.From != nil {
		query = query.Where("voucher_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("voucher_date <= ?", *filter.To)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(document_number) LIKE ? OR LOWER(counterparty_name) LIKE ? OR LOWER(reference) LIKE ?",
			pattern, pattern, pattern)
	}
	return query
}

// FindByReference lists vouchers written for a document number
func (r *GormVoucherRepository) FindByReference(ctx context.Context, tenantID uuid.UUID, reference string) ([]finance.CashFlowVoucher, error) {
	var rows []models.CashFlowVoucherModel
	err := forTenant(r.db.WithContext(ctx), tenantID).
		Where("reference = ?", reference).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return vouchers(rows), nil
}

// SumByType totals voucher amounts of one type
func (r *GormVoucherRepository) SumByType(ctx context.Context, tenantID uuid.UUID, voucherType finance.VoucherType) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := forTenant(r.db.WithContext(ctx).Model(&models.CashFlowVoucherModel{}), tenantID).
		Where("type = ?", string(voucherType)).
		Select("SUM(amount)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, translateError(err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Save creates or updates a voucher
func (r *GormVoucherRepository) Save(ctx context.Context, voucher *finance.CashFlowVoucher) error {
	return translateDocumentError(r.db.WithContext(ctx).Save(models.CashFlowVoucherModelFromDomain(voucher)).Error)
}

// DeleteForTenant deletes a voucher
func (r *GormVoucherRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := forTenant(r.db.WithContext(ctx), tenantID).Where("id = ?", id).Delete(&models.CashFlowVoucherModel{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func vouchers(rows []models.CashFlowVoucherModel) []finance.CashFlowVoucher {
	out := make([]finance.CashFlowVoucher, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

var _ finance.VoucherRepository = (*GormVoucherRepository)(nil)
