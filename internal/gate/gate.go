// Package gate implements the once-per-day launch decision evaluated at
// session login. The gate only ever reads state; the morning routine is
// responsible for stamping the run date after it starts.
package gate

import (
	"time"

	"resolution/internal/storage"
)

// Decision is the terminal outcome of one gate evaluation. The gate is
// re-evaluated fresh on the next login activation.
type Decision int

const (
	// SkippedEarly: local hour-of-day is before the configured gate hour.
	SkippedEarly Decision = iota

	// SkippedAlreadyRun: the routine already ran on today's calendar date.
	SkippedAlreadyRun

	// Launched: the routine should be presented to the user.
	Launched
)

func (d Decision) String() string {
	switch d {
	case SkippedEarly:
		return "skipped, too early"
	case SkippedAlreadyRun:
		return "skipped, already run today"
	case Launched:
		return "launched"
	}
	return "unknown"
}

// Evaluate applies the gate rules in order:
//
//  1. Before earliestHour local time: SkippedEarly, regardless of state.
//  2. State records a run on today's date: SkippedAlreadyRun.
//  3. Otherwise: Launched.
//
// A missing, unreadable or malformed state record reads as "never run" and
// falls through to Launched. The gate itself has no side effects.
func Evaluate(now time.Time, earliestHour int, state storage.Reader) Decision {
	if now.Hour() < earliestHour {
		return SkippedEarly
	}

	record, ok := state.Load()
	if ok && record.LastRunDate == now.Format("2006-01-02") {
		return SkippedAlreadyRun
	}
	return Launched
}
