package resolve

import (
	"log/slog"
)

// Severity classifies a recoverable condition raised during resolution.
//
// Whether a condition is escalated to a hard failure or merely logged is
// decided by comparing its severity against the engine's threshold; see
// [WithThreshold].
type Severity int

//go:generate go tool stringer --linecomment --type Severity --output policy_string.go

const (
	// SeverityWarning is the lowest severity: mostly informative, noting
	// something that is not quite right.
	SeverityWarning Severity = iota // warning
	// SeverityMinor indicates an actual but non-major error that does not
	// always warrant halting.
	SeverityMinor // minor
	// SeveritySerious indicates a problem that most configurations should
	// escalate.
	SeveritySerious // serious
	// SeverityCritical indicates the condition should nearly always raise.
	SeverityCritical // critical
)

// Escalation thresholds. An engine threshold at or above a severity's
// escalation value turns that severity into a returned error.
//
//	0: silent; conditions are dropped entirely
//	1: all conditions logged, none escalated
//	2: critical conditions escalate
//	3: serious and critical escalate
//	4: minor, serious, and critical escalate (default)
//	5: everything escalates, warnings included
const (
	ThresholdSilent   = 0
	ThresholdLogOnly  = 1
	ThresholdCritical = 2
	ThresholdSerious  = 3
	ThresholdMinor    = 4
	ThresholdAll      = 5
)

// DefaultThreshold escalates minor and above, logging warnings.
const DefaultThreshold = ThresholdMinor

// escalatesAt returns the minimum engine threshold at which the severity
// escalates to a returned error.
func (s Severity) escalatesAt() int {
	switch s {
	case SeverityCritical:
		return ThresholdCritical
	case SeveritySerious:
		return ThresholdSerious
	case SeverityMinor:
		return ThresholdMinor
	default:
		return ThresholdAll
	}
}

// event routes a recoverable condition through the engine's severity
// policy. It returns err when the condition escalates under the current
// threshold, and nil after logging it otherwise.
func (e *Engine) event(sev Severity, err error) error {
	if e.threshold >= sev.escalatesAt() {
		return err
	}

	if e.threshold > ThresholdSilent {
		e.log.Warn("condition skipped",
			slog.String("severity", sev.String()),
			slog.Any("error", err),
			slog.Int("escalates_at", sev.escalatesAt()),
		)
	}

	return nil
}

// clampThreshold bounds a threshold to the supported range.
func clampThreshold(n int) int {
	return min(max(n, ThresholdSilent), ThresholdAll)
}
