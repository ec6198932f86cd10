package cron

import (
	"errors"
	"fmt"
)

// ErrExpressionShape is returned when an expression does not split into
// exactly five whitespace-separated fields.
var ErrExpressionShape = errors.New("cron: expression must have exactly five fields")

// ErrFieldSyntax is returned when a term within a field does not match
// any grammar rule, or when a field resolves to no values at all.
var ErrFieldSyntax = errors.New("cron: invalid field syntax")

// ErrFieldRange is returned when a resolved value falls outside the
// field's bounds, a range runs backwards, or a step is out of bounds.
var ErrFieldRange = errors.New("cron: value out of range")

// FieldError reports a failed field expansion with the context needed
// to diagnose it: the field's name, its raw text, and the underlying
// syntax or range error.
type FieldError struct {
	Field string // field name, e.g. "minute"
	Text  string // raw field text as written in the expression
	Err   error  // wraps ErrFieldSyntax or ErrFieldRange
}

// Error returns the formatted field failure message.
func (fieldErr *FieldError) Error() string {
	return fmt.Sprintf("invalid %s field %q: %s", fieldErr.Field, fieldErr.Text, fieldErr.Err)
}

// Unwrap returns the underlying error for errors.Is matching.
func (fieldErr *FieldError) Unwrap() error {
	return fieldErr.Err
}
