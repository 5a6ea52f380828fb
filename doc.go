// Package bitonic provides parallel sorting engines for slices of
// ordered values. The comparisons are distributed over goroutines that
// each own a disjoint range of the slice, so no locks are needed on
// the data itself.
//
// Bitonic provides the following subpackages:
//
// bitonic/sort provides a serial bitonic sorter, a parallel bitonic
// sorter, and a parallel hybrid sorter that sorts chunks in parallel
// and merges them pairwise in parallel rounds.
//
// bitonic/parallel provides the fork-join primitives the sorters are
// built on: every call returns only when all goroutines it started
// have terminated, and panics in those goroutines are raised again in
// the caller.
//
// The bitonic command demonstrates the sorters and benchmarks them
// against each other and against the standard library.
//
// See https://en.wikipedia.org/wiki/Bitonic_sorter for background on
// sorting networks.
package bitonic
