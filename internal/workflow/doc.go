// Package workflow wires the state machine to persistence and exposes the
// command surface consumed by the CLI: one method per workflow action plus
// worklist, SLA, and export views.
//
// The service loads the dossier collection at construction (seeding on
// absence or parse failure) and writes it back after every successful
// mutation. Transitions themselves are delegated to internal/engine, which
// performs no I/O.
package workflow
