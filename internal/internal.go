package internal

import (
	"fmt"
	"math/bits"
	"runtime"
	"runtime/debug"
)

// MaxParallelism is the largest power of two that fits a uint8
// parallelism request.
const MaxParallelism = 1 << 7

// CoerceParallelism turns a requested worker count into a power of
// two. Zero means serial execution, any other value is rounded down
// to the nearest power of two, so 255 becomes MaxParallelism. The
// result never exceeds the request.
func CoerceParallelism(p uint8) int {
	if p == 0 {
		return 1
	}
	return 1 << (bits.Len8(p) - 1)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n, or 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Partition divides items into workers contiguous batches of equal
// size. Both items and workers must be powers of two. If there are
// fewer items than workers, the number of workers is reduced to the
// number of items, so that every batch holds at least one item.
//
// The returned batches [i*size, (i+1)*size) for 0 <= i < n are
// pairwise disjoint and cover [0, items) exactly.
func Partition(items, workers int) (n, size int) {
	if !IsPowerOfTwo(items) {
		panic(fmt.Sprintf("invalid number of items: %v", items))
	}
	if !IsPowerOfTwo(workers) {
		panic(fmt.Sprintf("invalid number of workers: %v", workers))
	}
	n = workers
	if n > items {
		n = items
	}
	return n, items / n
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a recovered panic. Error
// values stay matchable with errors.Is and errors.As.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		stack := debug.Stack()
		if err, isError := p.(error); isError {
			r := fmt.Errorf("%w\n%s\nrethrown at", err, stack)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, stack)
	}
	return nil
}
