package auth

import (
	"testing"
	"time"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(tenantID, userID uuid.UUID) Claims {
	now := time.Now()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "managersale",
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TenantID:  tenantID.String(),
		UserID:    userID.String(),
		Username:  "cashier",
		TokenType: TokenTypeAccess,
	}
}

func TestTokenVerifier_Verify(t *testing.T) {
	verifier := NewTokenVerifier(config.JWTConfig{Secret: testSecret, Issuer: "managersale"})
	tenantID, userID := uuid.New(), uuid.New()

	t.Run("valid token yields principal", func(t *testing.T) {
		p, err := verifier.Verify(sign(t, jwt.SigningMethodHS256, testSecret, validClaims(tenantID, userID)))
		require.NoError(t, err)
		assert.Equal(t, tenantID, p.TenantID)
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, "cashier", p.Username)
		assert.False(t, p.ExpiresAt.IsZero())
	})

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := validClaims(tenantID, userID)
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				return sign(t, jwt.SigningMethodHS256, testSecret, c)
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, "another-secret-another-secret-xx", validClaims(tenantID, userID))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "other algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, testSecret, validClaims(tenantID, userID))
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				c := validClaims(tenantID, userID)
				c.Issuer = "someone-else"
				return sign(t, jwt.SigningMethodHS256, testSecret, c)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				c := validClaims(tenantID, userID)
				c.ExpiresAt = nil
				return sign(t, jwt.SigningMethodHS256, testSecret, c)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				c := validClaims(tenantID, userID)
				c.TokenType = TokenTypeRefresh
				return sign(t, jwt.SigningMethodHS256, testSecret, c)
			},
			wantErr: ErrInvalidTokenType,
		},
		{
			name: "malformed tenant",
			token: func(t *testing.T) string {
				c := validClaims(tenantID, userID)
				c.TenantID = "shop-1"
				return sign(t, jwt.SigningMethodHS256, testSecret, c)
			},
			wantErr: ErrMissingTenantID,
		},
		{
			name: "missing user",
			token: func(t *testing.T) string {
				c := validClaims(tenantID, userID)
				c.UserID = ""
				return sign(t, jwt.SigningMethodHS256, testSecret, c)
			},
			wantErr: ErrMissingUserID,
		},
		{
			name:    "garbage",
			token:   func(*testing.T) string { return "not.a.jwt" },
			wantErr: ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
