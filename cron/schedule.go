package cron

import "slices"

// Schedule is the normalized result of parsing a cron expression: five
// sorted, duplicate-free integer sets, one per field. A Schedule is
// immutable once constructed; accessors return defensive copies so no
// caller can alter it.
type Schedule struct {
	expr    string
	minutes []int
	hours   []int
	doms    []int
	months  []int
	dows    []int
}

// Expr returns the source expression with field whitespace normalized
// to single spaces.
func (sched Schedule) Expr() string {
	return sched.expr
}

// Minutes returns the expanded minute values (0-59).
func (sched Schedule) Minutes() []int {
	return slices.Clone(sched.minutes)
}

// Hours returns the expanded hour values (0-23).
func (sched Schedule) Hours() []int {
	return slices.Clone(sched.hours)
}

// DaysOfMonth returns the expanded day-of-month values (1-31).
func (sched Schedule) DaysOfMonth() []int {
	return slices.Clone(sched.doms)
}

// Months returns the expanded month values (1-12).
func (sched Schedule) Months() []int {
	return slices.Clone(sched.months)
}

// DaysOfWeek returns the expanded day-of-week values (0-6, 0 is Sunday).
func (sched Schedule) DaysOfWeek() []int {
	return slices.Clone(sched.dows)
}
