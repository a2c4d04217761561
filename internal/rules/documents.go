package rules

import (
	"importflow/internal/dossier"
	"importflow/internal/stage"
)

// Document minimums keyed by target stage. QF Review is the only stage with
// a hard gate; add entries here to gate later transitions.
var documentGates = map[stage.Stage][]dossier.DocID{
	stage.QFReview: {
		dossier.DocInvoice,
		dossier.DocPackingList,
		dossier.DocBillOfLading,
		dossier.DocSafetyDataSheet,
	},
}

// RequiredFor returns the minimum document set for entering the target
// stage, in catalog order. Stages without a gate return nil.
func RequiredFor(target stage.Stage) []dossier.DocID {
	gate, ok := documentGates[target]
	if !ok {
		return nil
	}
	cp := make([]dossier.DocID, len(gate))
	copy(cp, gate)
	return cp
}

// MissingFor returns the subset of the target stage's document gate that is
// neither uploaded nor approved. An empty result permits the transition.
func MissingFor(target stage.Stage, d *dossier.Dossier) []dossier.DocID {
	var missing []dossier.DocID
	for _, id := range documentGates[target] {
		if !d.DocumentStatus(id).Satisfied() {
			missing = append(missing, id)
		}
	}
	return missing
}

// CanEditDocument reports whether the acting role owns the checklist
// document and may cycle its status.
func CanEditDocument(role dossier.Role, id dossier.DocID) bool {
	spec, ok := dossier.DocByID(id)
	return ok && spec.Owner == role
}
