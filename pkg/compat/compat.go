// Package compat checks expressions against the grammar stock cron daemons accept.
package compat

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/rcliao/cronexpand/pkg/cronexpr"
)

// ErrNotStandard is returned when the standard parser rejects a schedule.
var ErrNotStandard = errors.New("not a standard cron schedule")

// Standard parses the five schedule fields of e with the standard cron
// parser. An expression can expand here and still fail this check, e.g. the
// list "70,5" whose first minute is out of bounds.
func Standard(e *cronexpr.Expression) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(e.Schedule()); err != nil {
		return fmt.Errorf("%w: %w", ErrNotStandard, err)
	}
	return nil
}
