package sort

import (
	"cmp"

	"github.com/exascience/bitonic/internal"
	"github.com/exascience/bitonic/parallel"
)

// BitonicSort sorts data with a bitonic sorting network in the
// calling goroutine.
//
// The network performs O(n log² n) comparisons, and which elements
// are compared depends only on len(data), never on their values.
func BitonicSort[T cmp.Ordered](data []T) {
	withPadding(data, func(buf []T) {
		bitonicSort(buf, false, 1)
	})
}

// ParallelBitonicSort sorts data with the same network as
// BitonicSort, distributing the work over at most parallelism
// goroutines, rounded down to a power of two.
//
// The two halves of every sort step are handled in parallel, each
// with half of the remaining goroutine budget, and so are the
// compare-and-swap operations of every merge step. ParallelBitonicSort
// returns only when all goroutines it started have terminated.
func ParallelBitonicSort[T cmp.Ordered](data []T, parallelism uint8) {
	withPadding(data, func(buf []T) {
		bitonicSort(buf, false, internal.CoerceParallelism(parallelism))
	})
}

// split invokes left and right with half of budget p each, in
// parallel if p > 1. Otherwise both run in the calling goroutine with
// budget 1.
func split(p int, left, right func(p int)) {
	if p > 1 {
		half := p / 2
		parallel.Do(
			func() { left(half) },
			func() { right(half) },
		)
		return
	}
	left(1)
	right(1)
}

// bitonicSort sorts s, whose length is a power of two, in increasing
// order, or in decreasing order if reverse is set, using at most p
// goroutines.
func bitonicSort[T cmp.Ordered](s []T, reverse bool, p int) {
	n := len(s)
	if n <= 1 {
		return
	}
	lo, hi := s[:n/2], s[n/2:]
	split(p,
		func(p int) { bitonicSort(lo, false, p) },
		func(p int) { bitonicSort(hi, true, p) },
	)
	bitonicMerge(s, reverse, p)
}

// bitonicMerge sorts the bitonic sequence s, whose length is a power
// of two, using at most p goroutines.
//
// Element i of the lower half is compared with element i of the
// upper half. The pairs are divided into contiguous batches, one per
// goroutine; batch w covers lo[w*size:(w+1)*size] and the same range
// of hi, so no two goroutines ever access the same element. After the
// join, both halves are bitonic sequences of their own and are merged
// independently.
func bitonicMerge[T cmp.Ordered](s []T, reverse bool, p int) {
	n := len(s)
	if n <= 1 {
		return
	}
	lo, hi := s[:n/2], s[n/2:]
	workers, size := internal.Partition(len(lo), p)
	if workers == 1 {
		compareAndSwap(lo, hi, reverse)
	} else {
		parallel.Range(workers, func(w int) {
			low, high := w*size, (w+1)*size
			compareAndSwap(lo[low:high], hi[low:high], reverse)
		})
	}
	split(p,
		func(p int) { bitonicMerge(lo, reverse, p) },
		func(p int) { bitonicMerge(hi, reverse, p) },
	)
}

// compareAndSwap orders lo[i] and hi[i] for every i. lo and hi have
// the same length.
func compareAndSwap[T cmp.Ordered](lo, hi []T, reverse bool) {
	hi = hi[:len(lo)]
	for i := range lo {
		if (lo[i] > hi[i]) != reverse {
			lo[i], hi[i] = hi[i], lo[i]
		}
	}
}
