package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MoneyTag validates a non-negative decimal amount
const MoneyTag = "money"

// SetupValidator configures gin's validator: JSON names in errors, decimals
// validated by value, and the money rule.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation(MoneyTag, validateMoney)
}

// decimalValue exposes a decimal to validator as its string form
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateMoney(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(field.String())
	return err == nil && !d.IsNegative()
}

// FormatValidationErrors builds the ERR_VALIDATION envelope. Details maps
// each failing JSON path to a readable message.
func FormatValidationErrors(err error, requestID string) dto.Response {
	resp := dto.NewErrorResponse(dto.ErrCodeValidation, "Request validation failed")
	resp.Error.RequestID = requestID

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return resp
	}
	resp.Error.Details = make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		resp.Error.Details[fieldPath(fe)] = describe(fe)
	}
	return resp
}

func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

// fieldPath strips the struct name: "CreateInvoiceInput.lines[0].quantity" becomes "lines[0].quantity"
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}

var fixedMessages = map[string]string{
	"required": "This field is required",
	"email":    "Invalid email format",
	"uuid":     "Invalid UUID format",
	MoneyTag:   "Must be a non-negative amount",
}

func describe(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	p := fe.Param()
	switch fe.Tag() {
	case "oneof":
		return "Must be one of: " + p
	case "min", "max":
		bound := "least"
		if fe.Tag() == "max" {
			bound = "most"
		}
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Must be at %s %s characters", bound, p)
		case reflect.Slice:
			return fmt.Sprintf("Must contain at %s %s item(s)", bound, p)
		}
		return fmt.Sprintf("Must be at %s %s", bound, p)
	}
	return "Invalid value"
}
