package receiving_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"importflow/internal/fault"
	"importflow/internal/receiving"
)

var at = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

func TestValidateAccepts(t *testing.T) {
	tempOK := false
	rec, err := receiving.Validate(receiving.Candidate{
		Lot:           "  L-2025-001  ",
		Expiry:        "2027-03",
		Quantity:      "120.5",
		ColdChain:     true,
		TemperatureOK: &tempOK,
	}, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Lot != "L-2025-001" {
		t.Errorf("lot = %q, want trimmed value", rec.Lot)
	}
	if rec.Quantity != 120.5 {
		t.Errorf("quantity = %v, want 120.5", rec.Quantity)
	}
	if !rec.ColdChain || rec.TemperatureOK {
		t.Errorf("flags not carried: cold=%v temp=%v", rec.ColdChain, rec.TemperatureOK)
	}
	if !rec.RecordedAt.Equal(at) {
		t.Errorf("recorded at = %v, want %v", rec.RecordedAt, at)
	}
}

func TestValidateTemperatureDefaultsTrue(t *testing.T) {
	rec, err := receiving.Validate(receiving.Candidate{Lot: "L1", Expiry: "2026-01", Quantity: "1"}, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.TemperatureOK {
		t.Error("temperature should default to conforming")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name     string
		cand     receiving.Candidate
		fragment string
	}{
		{"all fields empty", receiving.Candidate{}, "lot, expiry, quantity"},
		{"lot only missing", receiving.Candidate{Expiry: "2026-01", Quantity: "1"}, "missing required fields: lot"},
		{"bad expiry layout", receiving.Candidate{Lot: "L1", Expiry: "03/2026", Quantity: "1"}, "YYYY-MM"},
		{"non-numeric quantity", receiving.Candidate{Lot: "L1", Expiry: "2026-01", Quantity: "ten"}, "must be a number"},
		{"zero quantity", receiving.Candidate{Lot: "L1", Expiry: "2026-01", Quantity: "0"}, "must be positive"},
		{"negative quantity", receiving.Candidate{Lot: "L1", Expiry: "2026-01", Quantity: "-4"}, "must be positive"},
		{"whitespace only lot", receiving.Candidate{Lot: "   ", Expiry: "2026-01", Quantity: "1"}, "missing required fields: lot"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := receiving.Validate(tc.cand, at)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, fault.Validation) {
				t.Errorf("error not tagged as validation: %v", err)
			}
			if !strings.Contains(err.Error(), tc.fragment) {
				t.Errorf("error %q missing %q", err, tc.fragment)
			}
		})
	}
}
