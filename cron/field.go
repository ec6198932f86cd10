package cron

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Cron field boundary constants.
const (
	fieldCount = 5 // number of fields in a standard cron expression
	splitParts = 2 // number of parts when splitting step or range expressions
)

// Field positions within a cron expression, in source order.
const (
	fieldMinute = iota
	fieldHour
	fieldDayOfMonth
	fieldMonth
	fieldDayOfWeek
)

// fieldSpec holds the static metadata for one cron field position:
// its name for error messages, inclusive bounds, and an optional
// case-insensitive alias table. The package-level specs are write-once
// constant data, safe for unsynchronized concurrent reads.
type fieldSpec struct {
	name  string
	min   int
	max   int
	names map[string]int
}

var monthNames = map[string]int{
	"JAN": 1,
	"FEB": 2,
	"MAR": 3,
	"APR": 4,
	"MAY": 5,
	"JUN": 6,
	"JUL": 7,
	"AUG": 8,
	"SEP": 9,
	"OCT": 10,
	"NOV": 11,
	"DEC": 12,
}

// Day-of-week numbering follows the cron convention: 0 is Sunday, 6 is
// Saturday. 7 is not accepted as an alias for Sunday.
var dayNames = map[string]int{
	"SUN": 0,
	"MON": 1,
	"TUE": 2,
	"WED": 3,
	"THU": 4,
	"FRI": 5,
	"SAT": 6,
}

var fieldSpecs = [fieldCount]fieldSpec{
	fieldMinute:     {name: "minute", min: 0, max: 59},
	fieldHour:       {name: "hour", min: 0, max: 23},
	fieldDayOfMonth: {name: "day-of-month", min: 1, max: 31},
	fieldMonth:      {name: "month", min: 1, max: 12, names: monthNames},
	fieldDayOfWeek:  {name: "day-of-week", min: 0, max: 6, names: dayNames},
}

// span returns the number of distinct values the field admits.
func (spec fieldSpec) span() int {
	return spec.max - spec.min + 1
}

// expandField expands one comma-separated cron field into a sorted,
// duplicate-free slice of integers within the field's bounds.
func expandField(field string, spec fieldSpec) ([]int, error) {
	var result []int

	for _, term := range strings.Split(field, ",") {
		vals, err := expandTerm(term, spec)
		if err != nil {
			return nil, err
		}

		result = append(result, vals...)
	}

	result = deduplicate(result)
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: field resolves to no values", ErrFieldSyntax)
	}

	return result, nil
}

// expandTerm expands a single term such as "5", "MON", "1-5", "*/15",
// or "10-20/5" into its integer values.
func expandTerm(term string, spec fieldSpec) ([]int, error) {
	stepParts := strings.SplitN(term, "/", splitParts)
	hasStep := len(stepParts) == splitParts

	step := 1

	if hasStep {
		s, err := parseStep(stepParts[1], spec)
		if err != nil {
			return nil, err
		}

		step = s
	}

	base := stepParts[0]

	var lo, hi int

	switch {
	case base == "*":
		lo = spec.min
		hi = spec.max
	case strings.Contains(base, "-"):
		var err error

		lo, hi, err = parseRange(base, spec)
		if err != nil {
			return nil, err
		}
	default:
		val, err := resolveValue(base, spec)
		if err != nil {
			return nil, err
		}

		if !hasStep {
			return []int{val}, nil
		}

		// A bare value with a step runs from that value to the field max.
		lo = val
		hi = spec.max
	}

	vals := make([]int, 0, (hi-lo)/step+1)
	for v := lo; v <= hi; v += step {
		vals = append(vals, v)
	}

	return vals, nil
}

// resolveValue resolves a single token to an integer, consulting the
// field's alias table (case-insensitively) before falling back to a
// literal integer parse, and validates it against the field's bounds.
func resolveValue(token string, spec fieldSpec) (int, error) {
	if spec.names != nil {
		if val, ok := spec.names[strings.ToUpper(token)]; ok {
			return val, nil
		}
	}

	val, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: unrecognized value %q", ErrFieldSyntax, token)
	}

	if val < spec.min || val > spec.max {
		return 0, fmt.Errorf("%w: value %d out of bounds [%d, %d]", ErrFieldRange, val, spec.min, spec.max)
	}

	return val, nil
}

// parseStep parses and validates a step value. A step must be a
// positive integer smaller than the field's span; anything larger
// cannot produce more than the range start and is rejected.
func parseStep(raw string, spec fieldSpec) (int, error) {
	step, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid step %q", ErrFieldSyntax, raw)
	}

	if step <= 0 || step >= spec.span() {
		return 0, fmt.Errorf("%w: step %d out of bounds [1, %d]", ErrFieldRange, step, spec.span()-1)
	}

	return step, nil
}

// parseRange parses a "lo-hi" range expression, resolving aliases on
// both endpoints, and returns the validated low and high values.
func parseRange(base string, spec fieldSpec) (int, int, error) {
	bounds := strings.SplitN(base, "-", splitParts)

	lo, err := resolveValue(bounds[0], spec)
	if err != nil {
		return 0, 0, err
	}

	hi, err := resolveValue(bounds[1], spec)
	if err != nil {
		return 0, 0, err
	}

	if lo > hi {
		return 0, 0, fmt.Errorf("%w: range start %d after end %d", ErrFieldRange, lo, hi)
	}

	return lo, hi, nil
}

func deduplicate(vals []int) []int {
	seen := make(map[int]bool, len(vals))
	result := make([]int, 0, len(vals))

	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}

	slices.Sort(result)

	return result
}
