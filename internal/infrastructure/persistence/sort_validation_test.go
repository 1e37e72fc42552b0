package persistence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	for input, want := range map[string]string{
		"":            "DESC",
		"asc":         "ASC",
		"  Asc ":      "ASC",
		"DESC":        "DESC",
		"ascending":   "DESC",
		"ASC; DELETE": "DESC",
	} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			assert.Equal(t, want, ValidateSortOrder(input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		input, fallback, want string
	}{
		{"", "created_at", "created_at"},
		{"sell_price", "created_at", "sell_price"},
		{" stock ", "created_at", "stock"},
		{"SKU", "created_at", "created_at"},
		{"tenant_id", "created_at", "created_at"},
		{"unknown", "", ""},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSortField(tt.input, ProductSortFields, tt.fallback))
		})
	}
}

func TestSortWhitelists(t *testing.T) {
	numbered := map[string]map[string]bool{
		"documents":        DocumentSortFields,
		"vouchers":         VoucherSortFields,
		"inventory checks": InventoryCheckSortFields,
	}
	for name, fields := range numbered {
		assert.True(t, fields["document_number"], name)
		assert.True(t, fields["created_at"], name)
	}
	assert.True(t, PartySortFields["debt"])
	assert.False(t, PartySortFields["tenant_id"])
}

func TestValidateSort_RejectsExpressions(t *testing.T) {
	payloads := []string{
		"name; DROP TABLE products;--",
		"name' OR '1'='1",
		"stock, (SELECT debt FROM customers)",
		"CASE WHEN 1=1 THEN sku ELSE name END",
		"sku\n; DELETE FROM invoices",
	}
	for _, p := range payloads {
		assert.Equal(t, "created_at", ValidateSortField(p, ProductSortFields, "created_at"), p)
		assert.Equal(t, "DESC", ValidateSortOrder(p), p)
	}
}
