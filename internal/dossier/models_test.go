package dossier_test

import (
	"testing"
	"time"

	"importflow/internal/dossier"
)

func TestDocStatusCycle(t *testing.T) {
	if got := dossier.DocPending.Next(); got != dossier.DocUploaded {
		t.Fatalf("pending.Next() = %q", got)
	}
	if got := dossier.DocUploaded.Next(); got != dossier.DocApproved {
		t.Fatalf("uploaded.Next() = %q", got)
	}
	if got := dossier.DocApproved.Next(); got != dossier.DocPending {
		t.Fatalf("approved.Next() = %q", got)
	}

	// Three toggles return any status to itself.
	for _, start := range []dossier.DocStatus{dossier.DocPending, dossier.DocUploaded, dossier.DocApproved} {
		if got := start.Next().Next().Next(); got != start {
			t.Errorf("%q cycled thrice = %q", start, got)
		}
	}
}

func TestDocStatusSatisfied(t *testing.T) {
	if dossier.DocPending.Satisfied() {
		t.Error("pending should not satisfy a gate")
	}
	if !dossier.DocUploaded.Satisfied() || !dossier.DocApproved.Satisfied() {
		t.Error("uploaded and approved should satisfy a gate")
	}
}

func TestHistoryPrepend(t *testing.T) {
	base := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	var h dossier.History
	h = h.Prepend(dossier.HistoryEntry{At: base, Actor: "COMEX", Message: "first"})
	h2 := h.Prepend(dossier.HistoryEntry{At: base.Add(time.Hour), Actor: "System", Message: "second"})

	if len(h) != 1 {
		t.Fatalf("original log mutated: len=%d", len(h))
	}
	if len(h2) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(h2))
	}
	if h2[0].Message != "second" || h2[1].Message != "first" {
		t.Fatalf("expected newest-first ordering, got %q then %q", h2[0].Message, h2[1].Message)
	}

	oldest, ok := h2.Oldest()
	if !ok || oldest.Message != "first" {
		t.Fatalf("Oldest() = %+v,%v", oldest, ok)
	}
}

func TestDocumentCatalog(t *testing.T) {
	spec, ok := dossier.DocByID(dossier.DocSafetyDataSheet)
	if !ok {
		t.Fatal("safety-data-sheet missing from catalog")
	}
	if spec.Owner != dossier.RoleCOMEX || !spec.Mandatory {
		t.Fatalf("unexpected spec: %+v", spec)
	}

	if _, ok := dossier.ParseDocID("INVOICE"); !ok {
		t.Error("ParseDocID should be case-insensitive")
	}
	if _, ok := dossier.ParseDocID("visa"); ok {
		t.Error("ParseDocID should reject unknown identifiers")
	}
}

func TestCloneIndependence(t *testing.T) {
	d := &dossier.Dossier{
		ID:        "IMP-1",
		Documents: map[dossier.DocID]dossier.DocStatus{dossier.DocInvoice: dossier.DocUploaded},
		Receiving: []dossier.ReceivingRecord{{Lot: "L1", Quantity: 5}},
		History:   dossier.History{{Actor: "COMEX", Message: "created"}},
		Products:  []dossier.Product{{SKU: "A"}},
	}

	cp := d.Clone()
	cp.Documents[dossier.DocInvoice] = dossier.DocApproved
	cp.Receiving[0].Lot = "L2"
	cp.History[0].Message = "edited"
	cp.Products[0].SKU = "B"

	if d.Documents[dossier.DocInvoice] != dossier.DocUploaded {
		t.Error("clone shared the documents map")
	}
	if d.Receiving[0].Lot != "L1" {
		t.Error("clone shared the receiving slice")
	}
	if d.History[0].Message != "created" {
		t.Error("clone shared the history slice")
	}
	if d.Products[0].SKU != "A" {
		t.Error("clone shared the products slice")
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  dossier.Role
		ok    bool
	}{
		{"COMEX", dossier.RoleCOMEX, true},
		{"operations", dossier.RoleOperations, true},
		{" qf ", dossier.RoleQF, true},
		{"admin", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := dossier.ParseRole(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseRole(%q) = %q,%v, want %q,%v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
