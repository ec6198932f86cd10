package cron

import (
	"fmt"
	"strings"
)

// Parse parses a standard 5-field cron expression and returns the
// expanded Schedule. The expression format is:
// minute hour day-of-month month day-of-week
//
// Each field supports single values, name aliases (JAN, MON), ranges,
// steps, and comma-separated lists. Returns an error wrapping
// ErrExpressionShape when the field count is wrong, or a *FieldError
// wrapping ErrFieldSyntax or ErrFieldRange when a field cannot be
// expanded. No partial Schedule is ever returned.
//
// Example:
//
//	sched, err := cron.Parse("*/15 9-17 * * MON-FRI")
//	if err != nil {
//	    return fmt.Errorf("parse schedule: %w", err)
//	}
func Parse(expr string) (Schedule, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return Schedule{}, fmt.Errorf("%w: empty expression", ErrExpressionShape)
	}

	fields := strings.Fields(trimmed)
	if len(fields) != fieldCount {
		return Schedule{}, fmt.Errorf("%w: expected %d fields, got %d in %q", ErrExpressionShape, fieldCount, len(fields), trimmed)
	}

	var sets [fieldCount][]int

	for i, field := range fields {
		vals, err := expandField(field, fieldSpecs[i])
		if err != nil {
			return Schedule{}, &FieldError{Field: fieldSpecs[i].name, Text: field, Err: err}
		}

		sets[i] = vals
	}

	return Schedule{
		expr:    strings.Join(fields, " "),
		minutes: sets[fieldMinute],
		hours:   sets[fieldHour],
		doms:    sets[fieldDayOfMonth],
		months:  sets[fieldMonth],
		dows:    sets[fieldDayOfWeek],
	}, nil
}

// MustParse is like Parse but panics if the expression is malformed.
// It is intended for static expressions known to be valid.
func MustParse(expr string) Schedule {
	sched, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return sched
}
