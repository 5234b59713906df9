// Package compute implements the parallel matrix-fill driver: it
// iterates the active sub-rectangle of a matrix.Matrix,
// skips the upper triangle when the matrix is triangular, dispatches
// a measure's Compare across independent cells, and publishes
// best-effort progress through two throttled hooks.
//
// compute never imports a progress-bar or logging library itself —
// those live in the sibling reporting package — it only defines the
// small function types a host wires in.
package compute
