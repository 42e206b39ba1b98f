package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrLineNotFound indicates the cart has no line with the given id.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrEmptyCart blocks checkout transitions that need at least one line.
	ErrEmptyCart = errors.New("cart is empty")
)

// StockError rejects an addition whose cumulative quantity would exceed the
// line's stock ceiling. The cart is left unchanged.
type StockError struct {
	Max int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("solo puedes agregar hasta %d unidades de este producto", e.Max)
}

// ValidationError carries user-facing, field-level messages collected as a
// batch. Fields with no key map to a single blocking message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validación fallida"
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
