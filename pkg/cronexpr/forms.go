package cronexpr

import (
	"fmt"
	"slices"
	"strings"
)

type outcome int

const (
	// rejected means the form does not apply; the next one is tried.
	rejected outcome = iota
	matched
	failed
)

// result is what a form returns for a raw field value.
type result struct {
	outcome outcome
	values  []int
	err     error
}

func reject() result { return result{outcome: rejected} }

func match(values []int) result { return result{outcome: matched, values: values} }

func fail(err error) result { return result{outcome: failed, err: err} }

// forms in the order they are tried. The list goes last: it accepts a bare
// value and would shadow the others.
var forms = []func(f field, s string) result{
	parseRange,
	parseStep,
	parseWildcard,
	parseList,
}

// expand returns the values matched by s. A value error from any form ends the
// search.
func (f field) expand(s string) ([]int, error) {
	for _, parse := range forms {
		r := parse(f, s)
		switch r.outcome {
		case matched:
			return r.values, nil
		case failed:
			return nil, r.err
		}
	}
	return nil, fmt.Errorf("%w: the value has to be like: %s", ErrNoMatchingForm, f.hint)
}

// parseRange handles A-B.
func parseRange(f field, s string) result {
	parts := strings.Split(s, string(Range))
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return reject()
	}
	values, err := f.resolve(parts)
	if err != nil {
		return fail(err)
	}
	start, end := values[0], values[1]
	if start >= end {
		return fail(fmt.Errorf("%w: the second value (%d) has to be bigger than the first one (%d)", ErrInvertedRange, end, start))
	}
	return match(sequence(start, end, 1))
}

// parseStep handles A/B and */B. The sequence runs up to the field maximum.
func parseStep(f field, s string) result {
	parts := strings.Split(s, string(Step))
	if len(parts) != 2 {
		return reject()
	}

	start := f.inf
	if parts[0] != string(Any) {
		v, err := f.resolveOne(parts[0])
		if err != nil {
			return fail(err)
		}
		start = v
	}
	step, err := f.resolveOne(parts[1])
	if err != nil {
		return fail(err)
	}
	if step <= 0 {
		return fail(fmt.Errorf("%w: the increment has to be greater than zero", ErrInvalidStep))
	}
	return match(sequence(start, f.sup, step))
}

// parseWildcard handles *.
func parseWildcard(f field, s string) result {
	if s != string(Any) {
		return reject()
	}
	return match(sequence(f.inf, f.sup, 1))
}

// parseList handles A,B,C and a single value.
func parseList(f field, s string) result {
	parts := strings.Split(s, string(ListSeparator))
	if len(parts) < 1 || len(parts) > f.sup-f.inf+1 {
		return reject()
	}
	for _, p := range parts {
		if strings.ContainsAny(p, specialChars) {
			return reject()
		}
	}
	values, err := f.resolve(parts)
	if err != nil {
		return fail(err)
	}
	slices.Sort(values)
	return match(values)
}

func sequence(start, end, step int) []int {
	var values []int
	for v := start; v <= end; v += step {
		values = append(values, v)
	}
	return values
}
