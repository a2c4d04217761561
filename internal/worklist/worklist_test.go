package worklist_test

import (
	"testing"
	"time"

	"importflow/internal/dossier"
	"importflow/internal/sla"
	"importflow/internal/stage"
	"importflow/internal/worklist"
)

var now = time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

func calc() sla.Calculator {
	return sla.Calculator{Now: func() time.Time { return now }}
}

func fixtures() []*dossier.Dossier {
	qfIdx, _ := stage.IndexOf(stage.QFReview)
	comexIdx, _ := stage.IndexOf(stage.COMEXReview)
	entryIdx, _ := stage.IndexOf(stage.EntryScheduling)
	return []*dossier.Dossier{
		{
			ID: "IMP-24097", Supplier: "Laboratorios Andina", Warehouse: "Central DC",
			TransportMode: "Marítima", Forwarder: "TransGlobal",
			ETA:        time.Date(2025, time.September, 21, 0, 0, 0, 0, time.UTC),
			StageIndex: qfIdx, StageEntry: now.Add(-2 * time.Hour), AllowanceHours: 24,
		},
		{
			ID: "IMP-24122", Supplier: "Nordic BioSupply", Warehouse: "Cold Store North",
			TransportMode: "Aérea", Forwarder: "AirBridge",
			ETA:        time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC),
			StageIndex: comexIdx, StageEntry: now.Add(-6 * time.Hour), AllowanceHours: 8,
		},
		{
			ID: "IMP-24160", Supplier: "Pacific Ingredients", Warehouse: "Central DC",
			TransportMode: "Marítima", Forwarder: "Oceanic",
			ETA:        time.Date(2025, time.October, 5, 0, 0, 0, 0, time.UTC),
			StageIndex: entryIdx, StageEntry: now.Add(-4 * time.Hour), AllowanceHours: 12,
		},
	}
}

func ids(ds []*dossier.Dossier) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}

func assertOrder(t *testing.T, got []*dossier.Dossier, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}
}

func TestApplySortETA(t *testing.T) {
	ds := fixtures()

	got := worklist.Apply(ds, worklist.Params{Sort: worklist.SortETAAsc}, calc())
	assertOrder(t, got, "IMP-24122", "IMP-24097", "IMP-24160")

	got = worklist.Apply(ds, worklist.Params{Sort: worklist.SortETADesc}, calc())
	assertOrder(t, got, "IMP-24160", "IMP-24097", "IMP-24122")

	// Input order preserved.
	if ds[0].ID != "IMP-24097" {
		t.Error("Apply mutated its input slice")
	}
}

func TestApplySortSLA(t *testing.T) {
	ds := fixtures()

	// Remaining hours: 24097 = 22, 24122 = 2, 24160 = 8.
	got := worklist.Apply(ds, worklist.Params{Sort: worklist.SortSLAAsc}, calc())
	assertOrder(t, got, "IMP-24122", "IMP-24160", "IMP-24097")

	got = worklist.Apply(ds, worklist.Params{Sort: worklist.SortSLADesc}, calc())
	assertOrder(t, got, "IMP-24097", "IMP-24160", "IMP-24122")
}

func TestApplyQuery(t *testing.T) {
	ds := fixtures()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"by id fragment", "24122", []string{"IMP-24122"}},
		{"by supplier, case folded", "nordic", []string{"IMP-24122"}},
		{"by warehouse", "central", []string{"IMP-24097", "IMP-24160"}},
		{"accent insensitive transport", "maritima", []string{"IMP-24097", "IMP-24160"}},
		{"by forwarder", "oceanic", []string{"IMP-24160"}},
		{"no match", "railway", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := worklist.Apply(ds, worklist.Params{Query: tc.query, Sort: worklist.SortETAAsc}, calc())
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", ids(got), tc.want)
			}
			for _, id := range tc.want {
				found := false
				for _, d := range got {
					if d.ID == id {
						found = true
					}
				}
				if !found {
					t.Fatalf("got %v, want %v", ids(got), tc.want)
				}
			}
		})
	}
}

func TestApplyStageFilter(t *testing.T) {
	ds := fixtures()
	got := worklist.Apply(ds, worklist.Params{Stage: stage.QFReview, Sort: worklist.SortETAAsc}, calc())
	assertOrder(t, got, "IMP-24097")
}

func TestApplyCombined(t *testing.T) {
	ds := fixtures()
	params := worklist.Params{Query: "central", Stage: stage.EntryScheduling, Sort: worklist.SortETAAsc}
	got := worklist.Apply(ds, params, calc())
	assertOrder(t, got, "IMP-24160")
}

func TestParseParams(t *testing.T) {
	params, err := worklist.ParseParams("  acme  ", "all", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Query != "acme" || params.Stage != "" || params.Sort != worklist.SortETAAsc {
		t.Fatalf("params = %+v", params)
	}

	params, err = worklist.ParseParams("", "qf review", "sla_desc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Stage != stage.QFReview || params.Sort != worklist.SortSLADesc {
		t.Fatalf("params = %+v", params)
	}

	if _, err := worklist.ParseParams("", "warehouse", ""); err == nil {
		t.Error("unknown stage filter should fail")
	}
	if _, err := worklist.ParseParams("", "", "eta"); err == nil {
		t.Error("unknown sort key should fail")
	}
}

func TestParseSortKey(t *testing.T) {
	if got, ok := worklist.ParseSortKey(""); !ok || got != worklist.SortETAAsc {
		t.Errorf("empty input should default to eta_asc, got %q,%v", got, ok)
	}
	if got, ok := worklist.ParseSortKey(" SLA_ASC "); !ok || got != worklist.SortSLAAsc {
		t.Errorf("ParseSortKey normalization failed: %q,%v", got, ok)
	}
	if _, ok := worklist.ParseSortKey("random"); ok {
		t.Error("unknown sort key should not parse")
	}
}
