// Package cron parses standard 5-field cron expressions into explicit
// per-field value sets and renders plain-English explanations of them.
//
// It supports wildcards, ranges, steps, lists, and JAN/MON style name
// aliases across minute, hour, day-of-month, month, and day-of-week
// fields. The package never computes fire times; it only validates and
// expands expressions for a downstream scheduler to consume.
package cron
