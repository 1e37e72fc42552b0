package commerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_ToFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := ListQuery{}.ToFilter()
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 20, f.PageSize)
		assert.Equal(t, "created_at", f.OrderBy)
		assert.Equal(t, "desc", f.OrderDir)
		assert.Empty(t, f.Filters)
	})

	t.Run("status lands in filters", func(t *testing.T) {
		f := ListQuery{Status: "PARTIAL", Page: 3, PageSize: 50, OrderBy: "total", OrderDir: "asc", Search: "ao"}.ToFilter()
		assert.Equal(t, "PARTIAL", f.Filters["status"])
		assert.Equal(t, 3, f.Page)
		assert.Equal(t, 50, f.PageSize)
		assert.Equal(t, "total", f.OrderBy)
		assert.Equal(t, "asc", f.OrderDir)
		assert.Equal(t, "ao", f.Search)
	})
}
