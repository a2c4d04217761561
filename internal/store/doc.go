// Package store persists workflow state as JSON values in a key-value
// store. The SQLite backend is the production implementation; the memory
// backend serves tests. Both share one codec so state round-trips
// identically.
//
// There are two fixed keys: the full dossier collection and the
// last-selected acting role. Absent or undecodable state surfaces as an
// error the workflow service answers with seed data.
package store
