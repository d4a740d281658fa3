// Package reports decides whether reactor level reports are safe.
//
// A Report holds a sequence of levels and a list of Rules. Each Rule is an
// independent predicate over the levels; a report is safe only when every
// rule accepts it. Rules are plain values implementing Evaluate, so new
// checks can be added without touching Report.
//
// Built-in rules:
//
//   - MonotonicRule: levels are all non-decreasing or all non-increasing.
//   - SlopeRule:     every adjacent difference lies within [Min, Max].
package reports
