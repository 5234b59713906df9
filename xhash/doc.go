// Package xhash provides the fast, non-cryptographic, byte-stable
// 64-bit hash used both for token ids (strval's symbolizer) and for
// symmetric pair fingerprints (matrix caching by hosts).
//
// Stability across runs and platforms matters here: caches and test
// expectations depend on it, so xhash wraps xxhash/v2 rather than
// anything seeded from process or hardware entropy (e.g. maphash).
package xhash
