package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLine struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int64            `json:"quantity" binding:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price" binding:"omitempty,money"`
}

type testPayment struct {
	Amount decimal.Decimal `json:"amount" binding:"money"`
	Lines  []testLine      `json:"lines" binding:"required,min=1,dive"`
}

func bindPayment(t *testing.T, body string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req testPayment
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body)))

	var resp dto.Response
	if w.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestSetupValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetupValidator()
	productID := uuid.NewString()

	t.Run("valid payload binds", func(t *testing.T) {
		w, _ := bindPayment(t, `{"amount":"150000","lines":[{"product_id":"`+productID+`","quantity":2,"unit_price":"75000.50"}]}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		w, _ := bindPayment(t, `{"amount":0,"lines":[{"product_id":"`+productID+`","quantity":1}]}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative amount is rejected by json name", func(t *testing.T) {
		w, resp := bindPayment(t, `{"amount":"-1","lines":[{"product_id":"`+productID+`","quantity":1}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Must be a non-negative amount", resp.Error.Details["amount"])
	})

	t.Run("negative line price is rejected", func(t *testing.T) {
		w, resp := bindPayment(t, `{"amount":"1","lines":[{"product_id":"`+productID+`","quantity":1,"unit_price":"-5"}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Error.Details, "lines[0].unit_price")
	})

	t.Run("line fields are validated", func(t *testing.T) {
		w, resp := bindPayment(t, `{"amount":"1","lines":[{"quantity":0}]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "This field is required", resp.Error.Details["lines[0].product_id"])
		assert.Equal(t, "This field is required", resp.Error.Details["lines[0].quantity"])
	})

	t.Run("empty lines are rejected", func(t *testing.T) {
		w, resp := bindPayment(t, `{"amount":"1","lines":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Must contain at least 1 item(s)", resp.Error.Details["lines"])
	})
}
