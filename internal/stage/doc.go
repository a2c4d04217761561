// Package stage defines the fixed, ordered catalog of import approval
// stages. Stage index 0 (Pre-Alert) is the initial stage and the final
// index (Closed) is terminal. The catalog is the single source of truth
// for stage names, ordering, and index validity.
package stage
