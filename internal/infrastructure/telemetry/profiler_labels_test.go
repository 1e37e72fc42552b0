package telemetry

import (
	"context"
	"runtime/pprof"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationLabels(t *testing.T) {
	labels := OperationLabels("InvoiceService.Create", map[string]string{ProfilingLabelTenantID: "t1"})
	assert.Equal(t, map[string]string{
		ProfilingLabelOperation: "InvoiceService.Create",
		ProfilingLabelTenantID:  "t1",
	}, labels)
}

func TestSanitizeLabels(t *testing.T) {
	t.Run("drops empty and high cardinality labels", func(t *testing.T) {
		pairs := sanitizeLabels(map[string]string{
			"operation":       "QuoteService.Convert",
			"request_id":      "abc",
			"Document_Number": "BG-00001",
			"empty":           "",
		})
		assert.Equal(t, []string{"operation", "QuoteService.Convert"}, pairs)
	})

	t.Run("truncates long values", func(t *testing.T) {
		pairs := sanitizeLabels(map[string]string{"route": strings.Repeat("x", 300)})
		assert.Len(t, pairs[1], MaxLabelValueLength)
	})
}

func TestWithProfilingLabels(t *testing.T) {
	t.Run("labels are visible inside fn", func(t *testing.T) {
		var got string
		WithProfilingLabels(context.Background(), OperationLabels("op", nil), func(ctx context.Context) {
			got, _ = pprof.Label(ctx, ProfilingLabelOperation)
		})
		assert.Equal(t, "op", got)
	})

	t.Run("runs fn without labels", func(t *testing.T) {
		called := false
		WithProfilingLabels(context.Background(), nil, func(context.Context) { called = true })
		assert.True(t, called)
	})
}
