package cronexpr

import (
	"fmt"
	"strconv"
)

// resolve converts a batch of literal tokens into integers.
//
// The first token decides how the whole batch is read: a leading digit means
// numbers, otherwise the token must be a name from the table valid for the
// field's upper bound. Only the last value is checked against the bounds.
func (f field) resolve(tokens []string) ([]int, error) {
	if len(tokens) == 0 || tokens[0] == "" {
		return nil, emptyValue()
	}

	var names *nameTable
	switch first := tokens[0]; {
	case isDigit(first[0]):
	case f.sup == monthTable.sup && monthTable.has(first):
		names = &monthTable
	case f.sup == weekdayTable.sup && weekdayTable.has(first):
		names = &weekdayTable
	default:
		return nil, fmt.Errorf("%w %q: not a number or a name valid for the field", ErrUnrecognizedValue, first)
	}

	values := make([]int, len(tokens))
	for i, tok := range tokens {
		if tok == "" {
			return nil, emptyValue()
		}
		if names != nil {
			v, ok := names.lookup(tok)
			if !ok {
				return nil, fmt.Errorf("%w %q", ErrUnknownStringValue, tok)
			}
			values[i] = v
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotAnInteger, tok)
		}
		values[i] = v
	}

	// TODO: check every value once callers agree on rejecting lists like "70,5".
	last := values[len(values)-1]
	if last < f.inf || last > f.sup {
		return nil, fmt.Errorf("%w: %d is not in the interval [%d, %d]", ErrOutOfRange, last, f.inf, f.sup)
	}
	return values, nil
}

// resolveOne resolves a single token.
func (f field) resolveOne(tok string) (int, error) {
	values, err := f.resolve([]string{tok})
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

func (t nameTable) has(s string) bool {
	_, ok := t.lookup(s)
	return ok
}

func emptyValue() error {
	return fmt.Errorf("%w: the value has to be an integer or a valid name", ErrEmptyValue)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
