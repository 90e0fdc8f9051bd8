package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicatePhone     = errors.New("phone number already exists")
	ErrInvalidCustomer    = errors.New("customer does not exist")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrHasDependentOrders = errors.New("customer has existing orders")
)

// FieldError is a single validation violation tied to an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violation found in an input so the caller
// can surface field-level feedback, not just the first failure.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
