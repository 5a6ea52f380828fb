package sort

import (
	"cmp"
	"slices"

	"github.com/exascience/bitonic/internal"
	"github.com/exascience/bitonic/parallel"
)

// ParallelSort sorts data using at most parallelism goroutines,
// rounded down to a power of two.
//
// The padded buffer is divided into one contiguous chunk per
// goroutine, and all chunks are sorted in parallel with slices.Sort.
// The sorted chunks are then merged pairwise in rounds: every round
// halves the number of goroutines and doubles the size of the sorted
// runs, until a single run covers the whole buffer.
//
// ParallelSort needs temporary memory of the size of the padded
// buffer when more than one goroutine is used.
func ParallelSort[T cmp.Ordered](data []T, parallelism uint8) {
	withPadding(data, func(buf []T) {
		workers, size := internal.Partition(len(buf), internal.CoerceParallelism(parallelism))
		if workers == 1 {
			slices.Sort(buf)
			return
		}
		parallel.Range(workers, func(w int) {
			slices.Sort(buf[w*size : (w+1)*size])
		})
		temp := make([]T, len(buf))
		for workers > 1 {
			workers /= 2
			size *= 2
			window := size
			parallel.Range(workers, func(w int) {
				low, high := w*window, (w+1)*window
				merge(buf[low:high], window/2, temp[low:high])
			})
		}
	})
}

// merge merges the sorted runs s[:mid] and s[mid:] into temp, which
// has the same length as s, and copies the result back into s.
func merge[T cmp.Ordered](s []T, mid int, temp []T) {
	l, r, k := 0, mid, 0
	for l < mid && r < len(s) {
		if s[r] < s[l] {
			temp[k] = s[r]
			r++
		} else {
			temp[k] = s[l]
			l++
		}
		k++
	}
	k += copy(temp[k:], s[l:mid])
	copy(temp[k:], s[r:])
	copy(s, temp)
}
