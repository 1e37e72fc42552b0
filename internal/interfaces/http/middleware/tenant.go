package middleware

import (
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Identity context keys and development headers
const (
	TenantIDKey     = "tenant_id"
	UserIDKey       = "user_id"
	UsernameKey     = "username"
	TenantHeaderKey = "X-Tenant-ID"
	UserHeaderKey   = "X-User-ID"
)

// setIdentity stores the caller on the gin context and on the request context
// read by the logger.
func setIdentity(c *gin.Context, tenantID, userID uuid.UUID, username string) {
	c.Set(TenantIDKey, tenantID)
	c.Set(UserIDKey, userID)
	if username != "" {
		c.Set(UsernameKey, username)
	}

	ctx := logger.WithTenantID(c.Request.Context(), tenantID.String())
	if userID != uuid.Nil {
		ctx = logger.WithUserID(ctx, userID.String())
	}
	c.Request = c.Request.WithContext(ctx)
}

// headerIdentity reads the development headers. A missing user header yields uuid.Nil.
func headerIdentity(c *gin.Context) (tenantID, userID uuid.UUID, ok bool) {
	tenantID, err := uuid.Parse(c.GetHeader(TenantHeaderKey))
	if err != nil || tenantID == uuid.Nil {
		return uuid.Nil, uuid.Nil, false
	}
	if raw := c.GetHeader(UserHeaderKey); raw != "" {
		userID, err = uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, uuid.Nil, false
		}
	}
	return tenantID, userID, true
}

// GetTenantID returns the tenant resolved by Authenticate
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(TenantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// GetUserID returns the acting user, or uuid.Nil when the caller is anonymous
func GetUserID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
