package cronexpr

import "strings"

// Field identifies one of the six positions of an expression.
type Field int

const (
	Minute Field = iota
	Hour
	DayOfMonth
	Month
	DayOfWeek
	Command
)

// Fields lists every field in expression order.
var Fields = [...]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek, Command}

// Special characters allowed in the schedule fields.
const (
	Any           = '*'
	ListSeparator = ','
	Range         = '-'
	Step          = '/'
)

const specialChars = "*,-/"

var (
	monthNames   = [...]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
	weekdayNames = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}
)

// nameTable maps symbolic values to integers. The value of a name is its
// position plus base.
type nameTable struct {
	names []string
	base  int
	// sup is the field upper bound the table is valid for.
	sup int
}

var (
	monthTable   = nameTable{names: monthNames[:], base: 1, sup: 12}
	weekdayTable = nameTable{names: weekdayNames[:], base: 0, sup: 6}
)

func (t nameTable) lookup(s string) (int, bool) {
	s = strings.ToUpper(s)
	for i, n := range t.names {
		if n == s {
			return i + t.base, true
		}
	}
	return 0, false
}

// field holds the parse configuration of a numeric field.
type field struct {
	label    string
	inf, sup int
	// hint is the example syntax reported when no form matches.
	hint string
}

const genericHint = "1/2 or * or 2,3 or 1 or 3-5"

var fieldTable = map[Field]field{
	Minute:     {label: "MINUTE", inf: 0, sup: 59, hint: genericHint},
	Hour:       {label: "HOUR", inf: 0, sup: 23, hint: genericHint},
	DayOfMonth: {label: "DAY OF MONTH", inf: 1, sup: 31, hint: "1/2 or * or 1,15 or 1 or 3-5"},
	Month:      {label: "MONTH", inf: 1, sup: 12, hint: genericHint},
	DayOfWeek:  {label: "DAY OF WEEK", inf: 0, sup: 6, hint: "1/2 or * or MON,TUE or 1 or 3-5"},
	Command:    {label: "COMMAND"},
}

// String returns the upper-case label of the field.
func (f Field) String() string {
	if c, ok := fieldTable[f]; ok {
		return c.label
	}
	return "UNKNOWN"
}

// Bounds returns the inclusive numeric range of the field. Command has none
// and reports (0, 0).
func (f Field) Bounds() (int, int) {
	c := fieldTable[f]
	return c.inf, c.sup
}

func (f Field) numeric() bool {
	return f >= Minute && f <= DayOfWeek
}
