// Package engine implements the dossier state machine. Each transition
// re-validates role permission against the authorization table, checks the
// stage-specific preconditions, and either returns a structured failure
// without touching the input or returns a replacement dossier with exactly
// one new history entry.
//
// The engine performs no I/O. Callers own persistence and decide when the
// returned dossier replaces the stored one.
package engine
