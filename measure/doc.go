// Package measure defines the measure-dispatch contract: a
// name-addressable registry of (configure, compare) pairs, the shared
// match-triple helper used by the set-coefficient family, and a catalog
// of concrete measures (Levenshtein, Damerau, Hamming, bag distance,
// Jaro, Jaro-Winkler, Lee, n-gram and subsequence kernels, and the
// Jaccard/Simpson/Braun-Blanquet/Dice/Sokal-Sneath/Kulczynski/Otsuka
// coefficients).
//
// Every catalog measure is a pure function of its two strval.Value
// arguments plus whatever Config it was Configure'd with; none hold
// mutable state after Configure returns, so a single configured
// instance may be shared across concurrent Compare calls from the
// compute driver.
package measure
