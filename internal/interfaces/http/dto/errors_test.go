package dto

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeSequenceCollision, http.StatusConflict},
		{ErrCodeDuplicateRequest, http.StatusConflict},
		{ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{ErrCodeInvalidTransition, http.StatusUnprocessableEntity},
		{ErrCodeOverpayment, http.StatusUnprocessableEntity},
		{ErrCodeSequenceCorrupt, http.StatusInternalServerError},
		{ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{shared.CodeNotFound, ErrCodeNotFound},
		{shared.CodeInsufficientStock, ErrCodeInsufficientStock},
		{shared.CodeInvalidTransition, ErrCodeInvalidTransition},
		{shared.CodeOverpayment, ErrCodeOverpayment},
		{shared.CodeSequenceCollision, ErrCodeSequenceCollision},
		{shared.CodeSequenceCorrupt, ErrCodeSequenceCorrupt},
		{ErrCodeNotFound, ErrCodeNotFound},
		{"CUSTOM_ERROR", "CUSTOM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.input))
		})
	}
}

func TestDomainCodesAreMapped(t *testing.T) {
	// every mapped code must resolve to a status and follow the ERR_ prefix
	for domainCode, code := range DomainErrorCodeMapping {
		t.Run(domainCode, func(t *testing.T) {
			_, ok := ErrorCodeHTTPStatus[code]
			assert.True(t, ok, "%s has no HTTP status", code)
			assert.True(t, strings.HasPrefix(code, "ERR_"))
		})
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("carries meta", func(t *testing.T) {
		resp := NewPageResponse(shared.Paginated[string]{
			Items: []string{"a", "b"}, Total: 12, Page: 2, PageSize: 2, TotalPages: 6,
		})
		assert.True(t, resp.Success)
		assert.Equal(t, []string{"a", "b"}, resp.Data)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, Meta{Total: 12, Page: 2, PageSize: 2, TotalPages: 6}, *resp.Meta)
	})

	t.Run("empty page encodes an empty list", func(t *testing.T) {
		data, err := json.Marshal(NewPageResponse(shared.Paginated[string]{Page: 1, PageSize: 20}))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"data":[]`)
	})
}

func TestErrorResponseJSON(t *testing.T) {
	resp := NewErrorResponse(ErrCodeNotFound, "invoice not found")
	resp.Error.RequestID = "req-1"

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded Response
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.False(t, decoded.Success)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, ErrCodeNotFound, decoded.Error.Code)
	assert.Equal(t, "req-1", decoded.Error.RequestID)
	assert.NotContains(t, string(data), `"data"`)
}
