// Package rules holds the declarative gates of the approval workflow: the
// per-stage document minimums, the (role, stage) → action authorization
// table, and document edit ownership. The engine consults these rules
// before every mutation; the CLI consults them to hide unavailable actions.
package rules
