package dossier

import "strings"

// DocStatus is the tri-state lifecycle of a checklist document.
type DocStatus string

const (
	DocPending  DocStatus = "pending"
	DocUploaded DocStatus = "uploaded"
	DocApproved DocStatus = "approved"
)

// Next returns the status that follows in the pending → uploaded →
// approved → pending cycle.
func (s DocStatus) Next() DocStatus {
	switch s {
	case DocPending:
		return DocUploaded
	case DocUploaded:
		return DocApproved
	default:
		return DocPending
	}
}

// Satisfied reports whether the status counts toward a document gate.
func (s DocStatus) Satisfied() bool {
	return s == DocUploaded || s == DocApproved
}

// DocID identifies one entry of the document checklist.
type DocID string

const (
	DocInvoice               DocID = "invoice"
	DocPackingList           DocID = "packing-list"
	DocBillOfLading          DocID = "bill-of-lading"
	DocCertificateOfOrigin   DocID = "certificate-of-origin"
	DocSafetyDataSheet       DocID = "safety-data-sheet"
	DocHealthRegistration    DocID = "health-registration"
	DocImportPermit          DocID = "import-permit"
	DocCertificateOfAnalysis DocID = "certificate-of-analysis"
	DocLabeling              DocID = "labeling"
)

// DocSpec describes one checklist document: its display name, the role
// responsible for maintaining it, and whether it is mandatory for the
// dossier overall.
type DocSpec struct {
	ID        DocID
	Name      string
	Owner     Role
	Mandatory bool
}

var documentCatalog = []DocSpec{
	{ID: DocInvoice, Name: "Commercial Invoice", Owner: RoleCOMEX, Mandatory: true},
	{ID: DocPackingList, Name: "Packing List", Owner: RoleCOMEX, Mandatory: true},
	{ID: DocBillOfLading, Name: "BL / AWB", Owner: RoleCOMEX, Mandatory: true},
	{ID: DocCertificateOfOrigin, Name: "Certificate of Origin", Owner: RoleCOMEX, Mandatory: false},
	{ID: DocSafetyDataSheet, Name: "Safety Data Sheet (MSDS)", Owner: RoleCOMEX, Mandatory: true},
	{ID: DocHealthRegistration, Name: "Health Registration (if applicable)", Owner: RoleQF, Mandatory: false},
	{ID: DocImportPermit, Name: "Import Permit / Resolution (if applicable)", Owner: RoleQF, Mandatory: false},
	{ID: DocCertificateOfAnalysis, Name: "Certificate of Analysis (CoA)", Owner: RoleQF, Mandatory: false},
	{ID: DocLabeling, Name: "Approved Labeling", Owner: RoleQF, Mandatory: false},
}

var documentIndex = func() map[DocID]DocSpec {
	index := make(map[DocID]DocSpec, len(documentCatalog))
	for _, spec := range documentCatalog {
		index[spec.ID] = spec
	}
	return index
}()

// Documents returns the checklist catalog in presentation order.
func Documents() []DocSpec {
	cp := make([]DocSpec, len(documentCatalog))
	copy(cp, documentCatalog)
	return cp
}

// DocByID looks up a checklist document by identifier.
func DocByID(id DocID) (DocSpec, bool) {
	spec, ok := documentIndex[id]
	return spec, ok
}

// ParseDocID converts free-form input into a known document identifier.
func ParseDocID(value string) (DocID, bool) {
	normalized := DocID(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := documentIndex[normalized]; !ok {
		return "", false
	}
	return normalized, true
}
