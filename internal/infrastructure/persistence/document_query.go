package persistence

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// searchDocuments narrows numbered document listings by number, counterparty name,
// status and an optional counterparty id filter.
func searchDocuments(query *gorm.DB, filter shared.Filter, nameColumn, partyColumn string) *gorm.DB {
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("LOWER(document_number) LIKE ? OR LOWER("+nameColumn+") LIKE ?", pattern, pattern)
	}
	if partyID, ok := filter.Filters[partyColumn]; ok && partyID != nil && partyID != "" {
		query = query.Where(partyColumn+" = ?", partyID)
	}
	return applyStatus(query, filter)
}

// sumOutstanding totals total_amount - paid_amount over the query
func sumOutstanding(query *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := query.Select("SUM(total_amount - paid_amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, translateError(err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
