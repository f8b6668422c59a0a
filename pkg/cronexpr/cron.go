// Package cronexpr expands cron expressions into the values they match.
// Supports the classic 5-field schedule followed by a command:
// minute hour day-of-month month day-of-week command
// Fields: *, N, N-M, N/step, */step, comma-separated lists.
// Months accept JAN-DEC (1-12), day-of-week accepts SUN-SAT (0-6).
package cronexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Expression is a tokenized cron expression. Fields are expanded on demand,
// so an invalid hour does not prevent reading the minute. It is immutable and
// safe for concurrent use.
type Expression struct {
	tokens [len(Fields)]string
}

// ResolvedField is the expansion of one field.
type ResolvedField struct {
	Field Field
	// Values holds the matched integers, ascending. Nil for the command.
	Values []int
	// Raw is the field as written in the expression.
	Raw string
}

// Label returns the upper-case field label.
func (r ResolvedField) Label() string {
	return r.Field.String()
}

// String returns the values joined by spaces, or the command.
func (r ResolvedField) String() string {
	if r.Field == Command {
		return r.Raw
	}
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// New splits expr into its six fields and checks the characters of the
// schedule fields. Values are not validated until a field is resolved.
func New(expr string) (*Expression, error) {
	tokens := strings.Fields(expr)
	if len(tokens) != len(Fields) {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedExpression, len(Fields), len(tokens))
	}

	e := &Expression{}
	for i, tok := range tokens {
		f := Fields[i]
		if f.numeric() {
			if err := checkChars(tok); err != nil {
				return nil, &FieldError{Field: f, Err: err}
			}
		}
		e.tokens[i] = tok
	}
	return e, nil
}

func checkChars(s string) error {
	for _, c := range s {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case strings.ContainsRune(specialChars, c):
		default:
			return fmt.Errorf("%w %q: the permitted special chars are %s", ErrInvalidCharacter, c, permitted())
		}
	}
	return nil
}

func permitted() string {
	chars := make([]string, 0, len(specialChars))
	for _, c := range specialChars {
		chars = append(chars, string(c))
	}
	return "[" + strings.Join(chars, " ") + "]"
}

// Resolve expands a field. The command is returned verbatim.
func (e *Expression) Resolve(f Field) (ResolvedField, error) {
	cfg, ok := fieldTable[f]
	if !ok {
		return ResolvedField{}, fmt.Errorf("unknown field %d", int(f))
	}
	raw := e.tokens[f]
	if f == Command {
		return ResolvedField{Field: f, Raw: raw}, nil
	}

	values, err := cfg.expand(raw)
	if err != nil {
		return ResolvedField{}, &FieldError{Field: f, Err: err}
	}
	return ResolvedField{Field: f, Values: values, Raw: raw}, nil
}

// Minute expands the minute field (0-59).
func (e *Expression) Minute() (ResolvedField, error) { return e.Resolve(Minute) }

// Hour expands the hour field (0-23).
func (e *Expression) Hour() (ResolvedField, error) { return e.Resolve(Hour) }

// DayOfMonth expands the day-of-month field (1-31).
func (e *Expression) DayOfMonth() (ResolvedField, error) { return e.Resolve(DayOfMonth) }

// Month expands the month field (1-12).
func (e *Expression) Month() (ResolvedField, error) { return e.Resolve(Month) }

// DayOfWeek expands the day-of-week field (0-6, Sunday is 0).
func (e *Expression) DayOfWeek() (ResolvedField, error) { return e.Resolve(DayOfWeek) }

// Command returns the command as written.
func (e *Expression) Command() ResolvedField {
	return ResolvedField{Field: Command, Raw: e.tokens[Command]}
}

// Expand resolves every field in order and stops at the first error.
func (e *Expression) Expand() ([]ResolvedField, error) {
	out := make([]ResolvedField, 0, len(Fields))
	for _, f := range Fields {
		r, err := e.Resolve(f)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Validate resolves every schedule field and returns all failures joined.
func (e *Expression) Validate() error {
	var errs []error
	for _, f := range Fields {
		if _, err := e.Resolve(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Schedule returns the five schedule fields separated by single spaces.
func (e *Expression) Schedule() string {
	return strings.Join(e.tokens[:Command], " ")
}

// String returns the expression with single spaces between fields.
func (e *Expression) String() string {
	return strings.Join(e.tokens[:], " ")
}
