package persistence

import (
	"strings"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder maps anything but a case-insensitive "asc" to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns sortField when it is an exact whitelist key,
// otherwise defaultField. The result is the only part of ORDER BY taken
// from the caller.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	if field := strings.TrimSpace(sortField); allowedFields[field] {
		return field
	}
	return defaultField
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"sku":        true,
	"name":       true,
	"category":   true,
	"sell_price": true,
	"cost_price": true,
	"stock":      true,
}

// PartySortFields contains allowed sort fields for customers and suppliers
var PartySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"debt":       true,
}

// DocumentSortFields contains allowed sort fields for numbered documents
var DocumentSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"document_number": true,
	"status":          true,
	"total_amount":    true,
}

// VoucherSortFields contains allowed sort fields for cash-flow vouchers
var VoucherSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"document_number": true,
	"voucher_date":    true,
	"amount":          true,
	"category":        true,
}

// InventoryCheckSortFields contains allowed sort fields for inventory checks
var InventoryCheckSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"document_number": true,
	"check_date":      true,
	"status":          true,
}

// applyPaging orders and paginates a query with a whitelisted sort column
func applyPaging(query *gorm.DB, filter shared.Filter, allowed map[string]bool, defaultField string) *gorm.DB {
	sortField := ValidateSortField(filter.OrderBy, allowed, defaultField)
	sortOrder := ValidateSortOrder(filter.OrderDir)
	return query.Order(sortField + " " + sortOrder).Offset(filter.Offset()).Limit(filter.Limit())
}

// applyStatus narrows by filter.Filters["status"] when present
func applyStatus(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if status, ok := filter.Filters["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}
