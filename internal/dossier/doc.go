// Package dossier defines the data model for tracked import shipments:
// the dossier itself, its document checklist with tri-state statuses,
// product line items, receiving records, and the prepend-only history log.
//
// The package holds no workflow logic. Transitions live in
// internal/engine; gating and permission rules live in internal/rules.
package dossier
