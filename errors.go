package frac

import "errors"

// Errors returned by this package. They are wrapped with context, match
// them with errors.Is.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnsupportedType = errors.New("unsupported type")
	ErrNotFinite       = errors.New("float is not finite")
	ErrSyntax          = errors.New("invalid fraction syntax")
)
