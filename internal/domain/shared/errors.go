package shared

import (
	"fmt"

	"github.com/google/uuid"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code.
// This lets errors.Is(err, ErrNotFound) match a NOT_FOUND error carrying a specific message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeNotFound            = "NOT_FOUND"
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeInvalidInput        = "INVALID_INPUT"
	CodeConcurrencyConflict = "CONCURRENCY_CONFLICT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeOverpayment         = "OVERPAYMENT_REJECTED"
	CodeSequenceCollision   = "SEQUENCE_COLLISION"
	CodeSequenceCorrupt     = "SEQUENCE_CORRUPT"
)

// Common domain errors
var (
	ErrNotFound            = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists       = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput        = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError(CodeConcurrencyConflict, "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
	ErrForbidden           = NewDomainError(CodeForbidden, "Access to this resource is forbidden")
	ErrInsufficientStock   = NewDomainError(CodeInsufficientStock, "Insufficient stock available")
	ErrInvalidTransition   = NewDomainError(CodeInvalidTransition, "Operation not allowed in current state")
	ErrOverpayment         = NewDomainError(CodeOverpayment, "Payment exceeds outstanding amount")
	ErrSequenceCollision   = NewDomainError(CodeSequenceCollision, "Document number already in use")
	ErrSequenceCorrupt     = NewDomainError(CodeSequenceCorrupt, "Existing document numbering cannot be parsed")
)

// NewNotFoundError returns a NOT_FOUND error naming the missing resource
func NewNotFoundError(resource string, id uuid.UUID) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s %s not found", resource, id))
}

// NewInvalidInputError returns an INVALID_INPUT error with the given message
func NewInvalidInputError(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}

// NewInvalidTransitionError returns an INVALID_TRANSITION error for a document
// that cannot move to the requested state from its current one.
func NewInvalidTransitionError(document, from, action string) *DomainError {
	return NewDomainError(CodeInvalidTransition, fmt.Sprintf("cannot %s %s in status %s", action, document, from))
}

// InsufficientStockError is returned when a decrement would drive a product's stock below zero.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int64
	Requested   int64
}

// NewInsufficientStockError creates an InsufficientStockError
func NewInsufficientStockError(productID uuid.UUID, productName string, available, requested int64) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID:   productID,
		ProductName: productName,
		Available:   available,
		Requested:   requested,
	}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s, have %d need %d", e.ProductName, e.Available, e.Requested)
}

// Unwrap exposes the INSUFFICIENT_STOCK domain error so errors.Is and errors.As
// against *DomainError keep working.
func (e *InsufficientStockError) Unwrap() error {
	return NewDomainError(CodeInsufficientStock, e.Error())
}
