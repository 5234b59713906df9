// Package matrix implements the active storage for pairwise
// string-similarity or string-distance scores over a sub-rectangle of
// an input collection: the Range abstraction, range/split parsing,
// and the Matrix object itself (triangular or rectangular storage,
// index arithmetic, allocation, and the get/set/metadata accessors
// writers consume).
//
// A Matrix never computes scores itself — that is the compute
// package's job — it only owns storage, range/shape bookkeeping, and
// the label/source metadata carried alongside the original collection.
package matrix
