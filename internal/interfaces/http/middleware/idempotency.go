package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader carries the client chosen replay key
const IdempotencyKeyHeader = "Idempotency-Key"

// MaxIdempotencyKeyLength bounds the header value
const MaxIdempotencyKeyLength = 128

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency rejects a POST whose Idempotency-Key was already accepted for
// the same tenant and path. A request that ends in an error releases its key
// so the client can retry. Must run after Authenticate.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = shared.DefaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		header := c.GetHeader(IdempotencyKeyHeader)
		if c.Request.Method != http.MethodPost || header == "" || cfg.Store == nil {
			c.Next()
			return
		}
		if len(header) > MaxIdempotencyKeyLength {
			resp := dto.NewErrorResponse(dto.ErrCodeBadRequest, IdempotencyKeyHeader+" is too long")
			resp.Error.RequestID = GetRequestID(c)
			c.AbortWithStatusJSON(http.StatusBadRequest, resp)
			return
		}

		tenantID, _ := GetTenantID(c)
		key := idempotencyKey(tenantID.String(), c.Request.URL.Path, header)

		ctx := c.Request.Context()
		claimed, err := cfg.Store.MarkProcessed(ctx, key, ttl)
		if err != nil {
			// fail open
			log.Warn("idempotency store unavailable, continuing without replay protection",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			c.Next()
			return
		}
		if !claimed {
			resp := dto.NewErrorResponse(dto.ErrCodeDuplicateRequest, "This request was already submitted")
			resp.Error.RequestID = GetRequestID(c)
			c.AbortWithStatusJSON(http.StatusConflict, resp)
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := cfg.Store.Release(context.WithoutCancel(ctx), key); err != nil {
				log.Warn("failed to release idempotency key", zap.Error(err))
			}
		}
	}
}

func idempotencyKey(tenantID, path, header string) string {
	return tenantID + ":" + path + ":" + header
}
