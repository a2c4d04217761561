package stage_test

import (
	"testing"

	"importflow/internal/stage"
)

func TestCatalogOrder(t *testing.T) {
	want := []stage.Stage{
		stage.PreAlert,
		stage.COMEXReview,
		stage.QFReview,
		stage.EntryScheduling,
		stage.ArrivalReceiving,
		stage.QFRelease,
		stage.Closed,
	}
	got := stage.All()
	if len(got) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(got))
	}
	if stage.Count() != len(want) {
		t.Fatalf("Count() = %d, want %d", stage.Count(), len(want))
	}
	for i, s := range want {
		if got[i] != s {
			t.Errorf("stage %d: got %q, want %q", i, got[i], s)
		}
		idx, ok := stage.IndexOf(s)
		if !ok || idx != i {
			t.Errorf("IndexOf(%q) = %d,%v, want %d,true", s, idx, ok, i)
		}
		byIdx, ok := stage.ByIndex(i)
		if !ok || byIdx != s {
			t.Errorf("ByIndex(%d) = %q,%v, want %q,true", i, byIdx, ok, s)
		}
	}
}

func TestByIndexBounds(t *testing.T) {
	if _, ok := stage.ByIndex(-1); ok {
		t.Error("expected ByIndex(-1) to fail")
	}
	if _, ok := stage.ByIndex(stage.Count()); ok {
		t.Error("expected ByIndex(Count()) to fail")
	}
	if stage.ValidIndex(-1) || stage.ValidIndex(stage.Count()) {
		t.Error("expected out-of-range indices to be invalid")
	}
	if !stage.ValidIndex(0) || !stage.ValidIndex(stage.Count()-1) {
		t.Error("expected in-range indices to be valid")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  stage.Stage
		ok    bool
	}{
		{"QF Review", stage.QFReview, true},
		{"qf review", stage.QFReview, true},
		{"  Arrival & Receiving  ", stage.ArrivalReceiving, true},
		{"closed", stage.Closed, true},
		{"", "", false},
		{"Shipping", "", false},
	}
	for _, tc := range cases {
		got, ok := stage.Parse(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Parse(%q) = %q,%v, want %q,%v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTerminal(t *testing.T) {
	if !stage.Closed.Terminal() {
		t.Error("expected Closed to be terminal")
	}
	for _, s := range stage.All()[:stage.Count()-1] {
		if s.Terminal() {
			t.Errorf("expected %q to be non-terminal", s)
		}
	}
}
