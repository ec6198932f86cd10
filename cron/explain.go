package cron

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// maxDiscreteTimes caps how many explicit clock times or hour windows
// are enumerated before the phrasing falls back to a generic form.
const maxDiscreteTimes = 3

var dayIndexToName = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// monthIndexToName is indexed by the cron month value, 1 through 12.
var monthIndexToName = [13]string{
	1:  "January",
	2:  "February",
	3:  "March",
	4:  "April",
	5:  "May",
	6:  "June",
	7:  "July",
	8:  "August",
	9:  "September",
	10: "October",
	11: "November",
	12: "December",
}

// weekdays is the day-of-week set meaning Monday through Friday.
var weekdays = []int{1, 2, 3, 4, 5}

// weekend is the day-of-week set meaning Saturday and Sunday.
var weekend = []int{0, 6}

// Explain renders a Schedule as a concise, deterministic English
// sentence. It first summarizes the time of day, then appends
// qualifiers for day-of-week, day-of-month, and month restrictions.
// Explain never fails for a Schedule produced by Parse.
func Explain(sched Schedule) string {
	timePhrase, clockTimes := summarizeTime(sched.minutes, sched.hours)
	calendarBits := summarizeCalendar(sched.doms, sched.months, sched.dows)

	var sentence string

	if clockTimes && len(calendarBits) == 0 {
		sentence = "Every day " + strings.Replace(timePhrase, "At ", "at ", 1)
	} else {
		parts := make([]string, 0, splitParts)
		if timePhrase != "" {
			parts = append(parts, timePhrase)
		}

		if len(calendarBits) > 0 {
			parts = append(parts, strings.Join(calendarBits, " "))
		}

		sentence = strings.Join(parts, " ")
	}

	return sentence + "."
}

// ExplainExpression parses a raw cron expression and explains it. Any
// parse error is propagated unchanged.
func ExplainExpression(expr string) (string, error) {
	sched, err := Parse(expr)
	if err != nil {
		return "", err
	}

	return Explain(sched), nil
}

// summarizeTime chooses the best-fit phrasing for the minute and hour
// sets, deferring to specialized helpers for the common patterns:
// full-day coverage, explicit clock times, contiguous windows, and
// stepped schedules. When no concise pattern fits it enumerates the
// minute and hour values, so the phrase is never empty. The second
// return value reports whether the phrase names exact clock times,
// which lets Explain prepend "Every day" when no calendar qualifier
// follows.
func summarizeTime(minute, hour []int) (string, bool) {
	if isFullRange(hour, fieldSpecs[fieldHour]) {
		return summarizeFullRangeTime(minute), false
	}

	if len(minute) == 1 {
		if phrase, ok := summarizeExactTimes(minute[0], hour); ok {
			return phrase, strings.HasPrefix(phrase, "At ")
		}
	}

	if isContiguous(minute) && isContiguous(hour) && len(minute) > 1 {
		return fmt.Sprintf("Every minute between %s and %s",
			formatTime(hour[0], minute[0]), formatTime(hour[len(hour)-1], minute[len(minute)-1])), false
	}

	if step, ok := uniformStep(minute); ok && step > 1 {
		if phrase, ok := summarizeSteppedTimes(hour, step); ok {
			return phrase, false
		}
	}

	return fmt.Sprintf("At minute %s past hour %s",
		joinNatural(intStrings(minute)), joinNatural(intStrings(hour))), false
}

// summarizeFullRangeTime describes schedules that cover every hour of
// the day.
func summarizeFullRangeTime(minute []int) string {
	if len(minute) == 1 {
		return fmt.Sprintf("At %02d every hour", minute[0])
	}

	if step, ok := uniformStep(minute); ok && step > 1 && minute[0] == 0 {
		return fmt.Sprintf("Every %d minutes", step)
	}

	if isFullRange(minute, fieldSpecs[fieldMinute]) {
		return "Every minute"
	}

	last := minute[len(minute)-1]

	return fmt.Sprintf("At %s and %d minute every hour",
		strings.Join(intStrings(minute[:len(minute)-1]), ", "), last)
}

// summarizeExactTimes handles single-minute schedules: uniform hour
// steps starting at midnight, short lists of explicit clock times, and
// single hour-and-minute combinations.
func summarizeExactTimes(minute int, hour []int) (string, bool) {
	if minute == 0 && len(hour) > 1 {
		if step, ok := uniformStep(hour); ok && isFullSteppedCover(hour, fieldSpecs[fieldHour].max, step) {
			return fmt.Sprintf("Every %d hours", step), true
		}

		if len(hour) <= maxDiscreteTimes {
			times := make([]string, len(hour))
			for i, h := range hour {
				times[i] = formatTime(h, minute)
			}

			return "At " + joinNatural(times), true
		}
	}

	if len(hour) == 1 {
		return "At " + formatTime(hour[0], minute), true
	}

	return "", false
}

// summarizeSteppedTimes describes minutes stepped by a uniform
// interval across either a contiguous hour window or a short list of
// discrete hour windows.
func summarizeSteppedTimes(hour []int, step int) (string, bool) {
	if isContiguous(hour) {
		return fmt.Sprintf("Every %d minutes from %s to %s",
			step, formatTime(hour[0], 0), formatTime(hour[len(hour)-1], 59)), true
	}

	if len(hour) <= maxDiscreteTimes {
		windows := make([]string, len(hour))
		for i, h := range hour {
			windows[i] = formatTime(h, 0) + "-" + formatTime(h, 59)
		}

		return fmt.Sprintf("Every %d minutes in %s", step, joinNatural(windows)), true
	}

	return "", false
}

// summarizeCalendar builds the qualifier fragments for the calendar
// portion of the schedule: day-of-week first, then day-of-month, then
// month. Fields covering their full range contribute nothing.
func summarizeCalendar(dom, month, dow []int) []string {
	var bits []string

	if !isFullRange(dow, fieldSpecs[fieldDayOfWeek]) {
		bits = append(bits, describeDaysOfWeek(dow))
	}

	if !isFullRange(dom, fieldSpecs[fieldDayOfMonth]) {
		bits = append(bits, describeDaysOfMonth(dom, month))
	}

	if !isFullRange(month, fieldSpecs[fieldMonth]) {
		bits = append(bits, describeMonths(month))
	}

	return bits
}

func describeDaysOfWeek(dow []int) string {
	switch {
	case slices.Equal(dow, weekdays):
		return "on weekdays"
	case slices.Equal(dow, weekend):
		return "on weekends"
	case len(dow) == 1:
		return "on " + dayIndexToName[dow[0]]
	case isContiguous(dow):
		return fmt.Sprintf("on %s to %s", dayIndexToName[dow[0]], dayIndexToName[dow[len(dow)-1]])
	default:
		names := make([]string, len(dow))
		for i, d := range dow {
			names[i] = dayIndexToName[d]
		}

		return "on " + joinNatural(names)
	}
}

func describeDaysOfMonth(dom, month []int) string {
	everyMonth := isFullRange(month, fieldSpecs[fieldMonth])

	if len(dom) == 1 {
		if everyMonth {
			return fmt.Sprintf("on the %s of each month", ordinal(dom[0]))
		}

		return "on the " + ordinal(dom[0])
	}

	if isContiguous(dom) {
		return fmt.Sprintf("from the %s to the %s", ordinal(dom[0]), ordinal(dom[len(dom)-1]))
	}

	ords := make([]string, len(dom))
	for i, d := range dom {
		ords[i] = ordinal(d)
	}

	if everyMonth {
		return fmt.Sprintf("on the %s of each month", joinNatural(ords))
	}

	return "on the " + joinNatural(ords)
}

func describeMonths(month []int) string {
	if len(month) == 1 {
		return "in " + monthIndexToName[month[0]]
	}

	if isContiguous(month) {
		return fmt.Sprintf("during %s to %s", monthIndexToName[month[0]], monthIndexToName[month[len(month)-1]])
	}

	names := make([]string, len(month))
	for i, m := range month {
		names[i] = monthIndexToName[m]
	}

	return "in " + joinNatural(names)
}

// formatTime renders hours and minutes as a zero-padded HH:MM string.
func formatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ordinal returns a human-friendly ordinal such as "1st" or "22nd".
// Values 10 through 20 all take "th".
func ordinal(n int) string {
	if n >= 10 && n <= 20 {
		return strconv.Itoa(n) + "th"
	}

	switch n % 10 {
	case 1:
		return strconv.Itoa(n) + "st"
	case 2:
		return strconv.Itoa(n) + "nd"
	case 3:
		return strconv.Itoa(n) + "rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}

// joinNatural joins words with commas and a final "and".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}

	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func intStrings(vals []int) []string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.Itoa(v)
	}

	return strs
}

// isContiguous reports whether vals form an uninterrupted ascending
// sequence. Singleton and empty slices count as contiguous.
func isContiguous(vals []int) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i]-vals[i-1] != 1 {
			return false
		}
	}

	return true
}

// uniformStep returns the consistent delta between consecutive values.
// A singleton reports a step of 1; a varying delta reports false.
func uniformStep(vals []int) (int, bool) {
	if len(vals) == 0 {
		return 0, false
	}

	if len(vals) == 1 {
		return 1, true
	}

	step := vals[1] - vals[0]
	for i := 2; i < len(vals); i++ {
		if vals[i]-vals[i-1] != step {
			return 0, false
		}
	}

	return step, true
}

// isFullRange reports whether vals cover the field's entire range.
// Parse guarantees vals are sorted, distinct, and in bounds, so a
// length comparison suffices.
func isFullRange(vals []int, spec fieldSpec) bool {
	return len(vals) == spec.span()
}

// isFullSteppedCover reports whether vals step from 0 through the
// field's last admissible start, e.g. (0, 8, 16) covers hours with
// step 8.
func isFullSteppedCover(vals []int, last, step int) bool {
	if len(vals) == 0 || vals[0] != 0 || step <= 0 {
		return false
	}

	want := make([]int, 0, last/step+1)
	for v := 0; v <= last; v += step {
		want = append(want, v)
	}

	return slices.Equal(vals, want)
}
