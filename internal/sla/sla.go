// Package sla derives deadline and urgency information for a dossier from
// its stage-entry timestamp and configured allowance. Results are computed
// on every read and never stored, so they cannot diverge from the
// underlying state.
package sla

import (
	"time"

	"importflow/internal/dossier"
)

// Tone classifies how much of the stage allowance remains.
type Tone string

const (
	ToneBreached Tone = "breached"
	ToneAtRisk   Tone = "at-risk"
	ToneOnTrack  Tone = "on-track"
)

// Default thresholds applied when the calculator is zero-valued.
const (
	DefaultAtRiskThresholdHours = 6.0
	DefaultAllowanceHours       = 24
)

// Status is the derived SLA picture for one dossier.
type Status struct {
	Deadline       time.Time
	HoursRemaining float64
	Tone           Tone
}

// Calculator evaluates SLA status. The zero value uses the wall clock and
// default thresholds.
type Calculator struct {
	Now                  func() time.Time
	AtRiskThresholdHours float64
	AllowanceHours       int
}

func (c Calculator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Calculator) threshold() float64 {
	if c.AtRiskThresholdHours > 0 {
		return c.AtRiskThresholdHours
	}
	return DefaultAtRiskThresholdHours
}

func (c Calculator) allowance(d *dossier.Dossier) time.Duration {
	hours := d.AllowanceHours
	if hours <= 0 {
		hours = c.AllowanceHours
	}
	if hours <= 0 {
		hours = DefaultAllowanceHours
	}
	return time.Duration(hours) * time.Hour
}

// StageStart resolves the effective stage-entry timestamp: the recorded
// entry time, else the oldest history entry, else now.
func (c Calculator) StageStart(d *dossier.Dossier) time.Time {
	if !d.StageEntry.IsZero() {
		return d.StageEntry
	}
	if oldest, ok := d.History.Oldest(); ok && !oldest.At.IsZero() {
		return oldest.At
	}
	return c.now()
}

// Evaluate computes the deadline, the signed fractional hours remaining,
// and the resulting tone for a dossier.
func (c Calculator) Evaluate(d *dossier.Dossier) Status {
	deadline := c.StageStart(d).Add(c.allowance(d))
	remaining := deadline.Sub(c.now()).Hours()

	tone := ToneOnTrack
	switch {
	case remaining <= 0:
		tone = ToneBreached
	case remaining <= c.threshold():
		tone = ToneAtRisk
	}

	return Status{Deadline: deadline, HoursRemaining: remaining, Tone: tone}
}
