/*
Package sort provides a serial bitonic sorter, a parallel bitonic
sorter, and a parallel hybrid sorter that combines parallel local
sorts with parallel pairwise merges.

All sorters sort in increasing order, in place, and are not stable.
The result does not depend on the requested parallelism, only the
running time does.

A parallelism of 0 or 1 means serial execution. Other values are
rounded down to the nearest power of two, so that at most 128
goroutines work on one sort at any time. Sorting the same slice from
two goroutines at once is not supported.

The bitonic network needs a power-of-two number of elements. Slices
of any other length are copied into a temporary buffer that is
padded with copies of the largest element, sorted there, and copied
back. The length and spare capacity of the slice passed in are never
modified.
*/
package sort

import (
	"cmp"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/exascience/bitonic/internal"
	"github.com/exascience/bitonic/parallel"
)

// ErrUnordered is the error wrapped by the panic value of a sort that
// encounters an element that is not equal to itself, such as a
// floating-point NaN. Such elements have no place in a total order,
// and the sorters refuse to handle them rather than produce an
// arbitrary permutation.
var ErrUnordered = errors.New("sort: element is not totally ordered")

// orderedMax returns the largest element of data. It panics with
// ErrUnordered if data contains an element that is not equal to
// itself.
func orderedMax[T cmp.Ordered](data []T) T {
	largest := data[0]
	for i, x := range data {
		if x != x {
			panic(fmt.Errorf("%w: index %d", ErrUnordered, i))
		}
		if x > largest {
			largest = x
		}
	}
	return largest
}

// withPadding invokes f on a buffer whose length is a power of two
// and whose prefix holds the elements of data. The remaining
// elements are copies of the largest element in data, which sort to
// the end and are dropped when the prefix is copied back.
func withPadding[T cmp.Ordered](data []T, f func(buf []T)) {
	n := len(data)
	if n <= 1 {
		return
	}
	largest := orderedMax(data)
	if internal.IsPowerOfTwo(n) {
		f(data)
		return
	}
	buf := make([]T, internal.NextPowerOfTwo(n))
	copy(buf, data)
	for i := n; i < len(buf); i++ {
		buf[i] = largest
	}
	f(buf)
	copy(data, buf[:n])
}

/*
IsSorted determines in parallel whether data is sorted in increasing
order. It attempts to terminate early when the return value is false.

Elements that are not equal to themselves are not detected; use one
of the sorters for that.
*/
func IsSorted[T cmp.Ordered](data []T, parallelism uint8) bool {
	pairs := len(data) - 1
	if pairs < 1 {
		return true
	}
	workers := min(internal.CoerceParallelism(parallelism), pairs)
	batch := (pairs + workers - 1) / workers
	var done atomic.Bool
	return parallel.RangeAnd(workers, func(w int) bool {
		low := 1 + w*batch
		high := min(low+batch, len(data))
		for i := low; i < high; i++ {
			if ((i % 1024) == 0) && done.Load() {
				return false
			}
			if data[i] < data[i-1] {
				done.Store(true)
				return false
			}
		}
		return true
	})
}
