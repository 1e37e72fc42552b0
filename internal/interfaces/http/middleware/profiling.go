package middleware

import (
	"context"
	"slices"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// ProfilingConfig holds configuration for the profiling middleware.
type ProfilingConfig struct {
	// Enabled controls whether profiling labels are added to requests.
	Enabled bool
	// SkipPaths are paths that don't need profiling labels (e.g., health checks).
	SkipPaths []string
}

// Profiling attaches Pyroscope labels (method, route, tenant) to the request
// goroutine so CPU profiles can be sliced per endpoint.
// Place it after Authenticate to get the tenant label.
func Profiling(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}
		telemetry.WithProfilingLabels(c.Request.Context(), profilingLabels(c), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

func profilingLabels(c *gin.Context) map[string]string {
	labels := map[string]string{
		telemetry.ProfilingLabelMethod: c.Request.Method,
		// route pattern, not the raw path, to bound cardinality
		telemetry.ProfilingLabelRoute: c.FullPath(),
	}
	if tenantID, ok := GetTenantID(c); ok {
		labels[telemetry.ProfilingLabelTenantID] = tenantID.String()
	}
	return labels
}
