package cronexpr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error returned by this package wraps one of them.
// Syntax errors are permanent; retrying the same input gives the same result.
var (
	// ErrMalformedExpression is returned when the input does not hold exactly six fields.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrInvalidCharacter is returned when a schedule field holds a character
	// other than a letter, a digit or one of the special characters.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrEmptyValue is returned for an empty list element, range endpoint or step part.
	ErrEmptyValue = errors.New("empty value")

	// ErrUnrecognizedValue is returned when the first value of a batch is neither
	// a number nor a name valid for the field.
	ErrUnrecognizedValue = errors.New("unrecognized value")

	// ErrUnknownStringValue is returned when a batch of names holds a value that
	// is not in the field's name table.
	ErrUnknownStringValue = errors.New("unknown string value")

	// ErrNotAnInteger is returned when a batch of numbers holds a value that does
	// not parse as an integer.
	ErrNotAnInteger = errors.New("not an integer")

	// ErrOutOfRange is returned when a resolved value falls outside the field bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvertedRange is returned when the start of a range is not below its end.
	ErrInvertedRange = errors.New("inverted range")

	// ErrInvalidStep is returned for a step increment of zero.
	ErrInvalidStep = errors.New("invalid step")

	// ErrNoMatchingForm is returned when no syntactic form accepts the field.
	ErrNoMatchingForm = errors.New("no matching form")
)

// FieldError reports a failure to expand one field of an expression.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Error in %s field: %s", strings.ToLower(e.Field.String()), e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
