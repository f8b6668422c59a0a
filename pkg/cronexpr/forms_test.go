package cronexpr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWildcardCoversBounds(t *testing.T) {
	for _, f := range Fields[:Command] {
		t.Run(f.String(), func(t *testing.T) {
			inf, sup := f.Bounds()
			values, err := fieldTable[f].expand("*")
			require.NoError(t, err)
			assert.Equal(t, seq(inf, sup), values)
		})
	}
}

func TestRangeExpansion(t *testing.T) {
	for _, f := range Fields[:Command] {
		inf, sup := f.Bounds()
		cfg := fieldTable[f]
		for a := inf; a <= sup; a++ {
			for b := inf; b <= sup; b++ {
				values, err := cfg.expand(fmt.Sprintf("%d-%d", a, b))
				if a < b {
					require.NoError(t, err, "%s %d-%d", f, a, b)
					assert.Equal(t, seq(a, b), values)
				} else {
					require.ErrorIs(t, err, ErrInvertedRange, "%s %d-%d", f, a, b)
				}
			}
		}
	}
}

func TestStepExpansion(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		want  []int
	}{
		{"every 15 minutes", Minute, "*/15", []int{0, 15, 30, 45}},
		{"from 2 every 5", Minute, "2/5", []int{2, 7, 12, 17, 22, 27, 32, 37, 42, 47, 52, 57}},
		{"day of month starts at 1", DayOfMonth, "*/10", []int{1, 11, 21, 31}},
		{"step past the bound", Hour, "20/10", []int{20}},
		{"named start", Month, "FEB/3", []int{2, 5, 8, 11}},
		{"named weekday start", DayOfWeek, "WED/2", []int{3, 5}},
		{"step of one", Hour, "*/1", seq(0, 23)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := fieldTable[tt.field].expand(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestStepMatchesWildcardStart(t *testing.T) {
	for _, f := range Fields[:Command] {
		inf, sup := f.Bounds()
		cfg := fieldTable[f]
		for step := 1; step <= sup; step++ {
			a, err := cfg.expand(fmt.Sprintf("*/%d", step))
			require.NoError(t, err)
			b, err := cfg.expand(fmt.Sprintf("%d/%d", inf, step))
			require.NoError(t, err)
			assert.Equal(t, a, b)

			var want []int
			for v := inf; v <= sup; v += step {
				want = append(want, v)
			}
			assert.Equal(t, want, a)
		}
	}
}

func TestStepErrors(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		err   error
	}{
		{"zero step", Minute, "*/0", ErrInvalidStep},
		{"empty step", Minute, "*/", ErrEmptyValue},
		{"empty start", Minute, "/5", ErrEmptyValue},
		{"step out of range", Hour, "*/24", ErrOutOfRange},
		{"start out of range", DayOfMonth, "32/1", ErrOutOfRange},
		{"unknown start", Hour, "X/2", ErrUnrecognizedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fieldTable[tt.field].expand(tt.value)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestListIsSorted(t *testing.T) {
	tests := []struct {
		field Field
		value string
		want  []int
	}{
		{DayOfMonth, "15,1", []int{1, 15}},
		{Minute, "45,0,30,15", []int{0, 15, 30, 45}},
		{Month, "DEC,JAN,JUN", []int{1, 6, 12}},
		{DayOfWeek, "SAT,SUN", []int{0, 6}},
		{Hour, "7", []int{7}},
		// duplicates are kept
		{Hour, "3,3", []int{3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			values, err := fieldTable[tt.field].expand(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestListRejections(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		err   error
	}{
		{"more values than the field holds", DayOfWeek, "0,1,2,3,4,5,6,0", ErrNoMatchingForm},
		{"negative element", DayOfMonth, "-1,", ErrNoMatchingForm},
		{"wildcard element", Minute, "*,5", ErrNoMatchingForm},
		{"empty element", Minute, "1,,2", ErrEmptyValue},
		{"trailing comma", Minute, "1,", ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fieldTable[tt.field].expand(tt.value)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFormPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		err   error
	}{
		{"two dashes", Minute, "1-2-3", ErrNoMatchingForm},
		{"two slashes", Minute, "1/2/3", ErrNoMatchingForm},
		{"leading dash", Minute, "-5", ErrNoMatchingForm},
		{"trailing dash", Minute, "5-", ErrNoMatchingForm},
		{"double wildcard", Minute, "**", ErrNoMatchingForm},
		// the range form takes the field first and fails on the step part
		{"range with step", Minute, "1-10/2", ErrNotAnInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fieldTable[tt.field].expand(tt.value)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNoMatchingFormHints(t *testing.T) {
	tests := []struct {
		field Field
		hint  string
	}{
		{Minute, "the value has to be like: 1/2 or * or 2,3 or 1 or 3-5"},
		{Hour, "the value has to be like: 1/2 or * or 2,3 or 1 or 3-5"},
		{DayOfMonth, "the value has to be like: 1/2 or * or 1,15 or 1 or 3-5"},
		{Month, "the value has to be like: 1/2 or * or 2,3 or 1 or 3-5"},
		{DayOfWeek, "the value has to be like: 1/2 or * or MON,TUE or 1 or 3-5"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			_, err := fieldTable[tt.field].expand("1-2-3")
			require.ErrorIs(t, err, ErrNoMatchingForm)
			assert.Contains(t, err.Error(), tt.hint)
		})
	}
}
