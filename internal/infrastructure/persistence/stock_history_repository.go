package persistence

import (
	"context"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/inventory"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockHistoryRepository implements inventory.StockHistoryRepository.
// The table is append-only: there is no update or delete path.
type GormStockHistoryRepository struct {
	db *gorm.DB
}

// NewGormStockHistoryRepository creates a new GormStockHistoryRepository
func NewGormStockHistoryRepository(db *gorm.DB) *GormStockHistoryRepository {
	return &GormStockHistoryRepository{db: db}
}

// Append inserts a ledger entry
func (r *GormStockHistoryRepository) Append(ctx context.Context, entry *inventory.StockHistoryEntry) error {
	return translateError(r.db.WithContext(ctx).Create(models.StockHistoryModelFromDomain(entry)).Error)
}

// FindByProduct lists entries of a product, newest first
func (r *GormStockHistoryRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]inventory.StockHistoryEntry, error) {
	var rows []models.StockHistoryModel
	err := forTenant(r.db.WithContext(ctx), tenantID).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return stockEntries(rows), nil
}

// CountByProduct counts entries of a product
func (r *GormStockHistoryRepository) CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error) {
	var count int64
	err := forTenant(r.db.WithContext(ctx).Model(&models.StockHistoryModel{}), tenantID).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// FindByReference lists entries written for a document number, oldest first
func (r *GormStockHistoryRepository) FindByReference(ctx context.Context, tenantID uuid.UUID, reference string) ([]inventory.StockHistoryEntry, error) {
	var rows []models.StockHistoryModel
	err := forTenant(r.db.WithContext(ctx), tenantID).
		Where("reference = ?", reference).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return stockEntries(rows), nil
}

// SumChangesByProduct sums every change of a product
func (r *GormStockHistoryRepository) SumChangesByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error) {
	var total int64
	err := forTenant(r.db.WithContext(ctx).Model(&models.StockHistoryModel{}), tenantID).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(change_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

func stockEntries(rows []models.StockHistoryModel) []inventory.StockHistoryEntry {
	entries := make([]inventory.StockHistoryEntry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].ToDomain()
	}
	return entries
}

var _ inventory.StockHistoryRepository = (*GormStockHistoryRepository)(nil)
