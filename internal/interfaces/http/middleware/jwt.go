package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/auth"
	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authorization header
const (
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// AuthConfig holds configuration for the authentication middleware
type AuthConfig struct {
	// Verifier validates bearer tokens
	Verifier *auth.TokenVerifier
	// Required rejects requests without a bearer token. When false the
	// X-Tenant-ID / X-User-ID headers are accepted instead.
	Required bool
	// SkipPaths are paths that don't require a caller
	SkipPaths []string
	Logger    *zap.Logger
}

// Authenticate resolves the calling tenant and user for every request.
// A bearer token always wins over the development headers.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader != "" {
			tokenString, found := strings.CutPrefix(authHeader, BearerPrefix)
			if !found || tokenString == "" {
				abortUnauthorized(c, log, auth.ErrInvalidToken)
				return
			}
			if cfg.Verifier == nil {
				abortUnauthorized(c, log, auth.ErrInvalidToken)
				return
			}
			principal, err := cfg.Verifier.Verify(tokenString)
			if err != nil {
				abortUnauthorized(c, log, err)
				return
			}
			setIdentity(c, principal.TenantID, principal.UserID, principal.Username)
			c.Next()
			return
		}

		if cfg.Required {
			abortUnauthorized(c, log, errors.New("missing authorization header"))
			return
		}

		tenantID, userID, ok := headerIdentity(c)
		if !ok {
			abortUnauthorized(c, log, errors.New("missing or malformed "+TenantHeaderKey))
			return
		}
		setIdentity(c, tenantID, userID, "")
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, log *zap.Logger, err error) {
	log.Warn("authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)

	code, message := dto.ErrCodeUnauthorized, "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code, message = dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingTenantID),
		errors.Is(err, auth.ErrMissingUserID):
		code, message = dto.ErrCodeTokenInvalid, "Invalid token"
	}

	resp := dto.NewErrorResponse(code, message)
	resp.Error.RequestID = GetRequestID(c)
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}
