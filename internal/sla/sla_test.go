package sla_test

import (
	"testing"
	"time"

	"importflow/internal/dossier"
	"importflow/internal/sla"
)

var now = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func TestEvaluateTones(t *testing.T) {
	calc := sla.Calculator{Now: fixedClock}

	cases := []struct {
		name      string
		entered   time.Time
		allowance int
		wantTone  sla.Tone
		wantHours float64
	}{
		{"fresh stage is on track", now.Add(-1 * time.Hour), 24, sla.ToneOnTrack, 23},
		{"inside threshold is at risk", now.Add(-7 * time.Hour), 8, sla.ToneAtRisk, 1},
		{"exactly at deadline is breached", now.Add(-6 * time.Hour), 6, sla.ToneBreached, 0},
		{"past deadline is breached", now.Add(-30 * time.Hour), 24, sla.ToneBreached, -6},
		{"exactly at threshold is at risk", now.Add(-18 * time.Hour), 24, sla.ToneAtRisk, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &dossier.Dossier{StageEntry: tc.entered, AllowanceHours: tc.allowance}
			got := calc.Evaluate(d)
			if got.Tone != tc.wantTone {
				t.Errorf("tone = %q, want %q", got.Tone, tc.wantTone)
			}
			if got.HoursRemaining != tc.wantHours {
				t.Errorf("hours remaining = %v, want %v", got.HoursRemaining, tc.wantHours)
			}
			wantDeadline := tc.entered.Add(time.Duration(tc.allowance) * time.Hour)
			if !got.Deadline.Equal(wantDeadline) {
				t.Errorf("deadline = %v, want %v", got.Deadline, wantDeadline)
			}
		})
	}
}

func TestEvaluateFractionalHours(t *testing.T) {
	calc := sla.Calculator{Now: fixedClock}
	d := &dossier.Dossier{StageEntry: now.Add(-90 * time.Minute), AllowanceHours: 24}
	if got := calc.Evaluate(d).HoursRemaining; got != 22.5 {
		t.Fatalf("hours remaining = %v, want 22.5", got)
	}
}

func TestAllowanceFallbacks(t *testing.T) {
	d := &dossier.Dossier{StageEntry: now.Add(-1 * time.Hour)}

	// Calculator-level default wins over the package default.
	calc := sla.Calculator{Now: fixedClock, AllowanceHours: 8}
	if got := calc.Evaluate(d).HoursRemaining; got != 7 {
		t.Errorf("calculator allowance: hours remaining = %v, want 7", got)
	}

	// Zero-valued calculator falls back to 24h.
	calc = sla.Calculator{Now: fixedClock}
	if got := calc.Evaluate(d).HoursRemaining; got != 23 {
		t.Errorf("default allowance: hours remaining = %v, want 23", got)
	}

	// The dossier's own allowance wins over both.
	d.AllowanceHours = 48
	calc = sla.Calculator{Now: fixedClock, AllowanceHours: 8}
	if got := calc.Evaluate(d).HoursRemaining; got != 47 {
		t.Errorf("dossier allowance: hours remaining = %v, want 47", got)
	}
}

func TestStageStartFallbacks(t *testing.T) {
	calc := sla.Calculator{Now: fixedClock}

	entered := now.Add(-3 * time.Hour)
	d := &dossier.Dossier{StageEntry: entered}
	if got := calc.StageStart(d); !got.Equal(entered) {
		t.Errorf("StageStart = %v, want stage entry %v", got, entered)
	}

	oldest := now.Add(-10 * time.Hour)
	d = &dossier.Dossier{History: dossier.History{
		{At: now.Add(-2 * time.Hour), Actor: "System", Message: "latest"},
		{At: oldest, Actor: "COMEX", Message: "created"},
	}}
	if got := calc.StageStart(d); !got.Equal(oldest) {
		t.Errorf("StageStart = %v, want oldest history %v", got, oldest)
	}

	d = &dossier.Dossier{}
	if got := calc.StageStart(d); !got.Equal(now) {
		t.Errorf("StageStart = %v, want clock fallback %v", got, now)
	}
}
