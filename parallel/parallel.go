// Package parallel provides the fork-join primitives the sorting
// engines are built on.
//
// Every function in this package returns only after all the tasks it
// spawned have terminated, so all writes performed by one round of
// tasks are visible to the caller before the next round starts. The
// tasks of a single round run without any ordering between them; it
// is up to the caller to hand each task a range of memory that no
// other task of the same round touches.
package parallel

import (
	"fmt"
	"sync"

	"github.com/exascience/bitonic/internal"
)

// fork runs left in the current goroutine and right in a new one,
// and returns when both have terminated. A panic in left takes
// precedence over a panic in right; either is raised again in the
// calling goroutine after the join.
func fork(left, right func()) {
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		right()
	}()
	func() {
		defer wg.Wait()
		left()
	}()
	if p != nil {
		panic(p)
	}
}

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, except for the
// left-most one which runs in the calling goroutine, and Do returns
// only when all thunks have terminated.
//
// If one or more thunks panic, Do eventually panics with the
// left-most panic value.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
	case 2:
		fork(thunks[0], thunks[1])
	default:
		half := len(thunks) / 2
		fork(
			func() { Do(thunks[:half]...) },
			func() { Do(thunks[half:]...) },
		)
	}
}

// Range invokes f(i) for every i in [0, n) in parallel and returns
// when all invocations have terminated. Task i is meant to own
// partition i of a buffer split with internal.Partition.
//
// For n == 1, f is invoked in the calling goroutine and no goroutine
// is spawned. Range panics if n < 0.
//
// If one or more invocations panic, Range eventually panics with the
// panic value of the invocation with the lowest index.
func Range(n int, f func(i int)) {
	if n < 0 {
		panic(fmt.Sprintf("invalid number of tasks: %v", n))
	}
	var recur func(low, high int)
	recur = func(low, high int) {
		switch high - low {
		case 0:
			return
		case 1:
			f(low)
		default:
			mid := low + (high-low)/2
			fork(
				func() { recur(low, mid) },
				func() { recur(mid, high) },
			)
		}
	}
	recur(0, n)
}

// RangeAnd invokes f(i) for every i in [0, n) in parallel, and
// combines the results with the && operator, with true as the
// result for n == 0.
//
// RangeAnd panics if n < 0, and propagates panics like Range.
func RangeAnd(n int, f func(i int) bool) bool {
	if n < 0 {
		panic(fmt.Sprintf("invalid number of tasks: %v", n))
	}
	var recur func(low, high int) bool
	recur = func(low, high int) bool {
		switch high - low {
		case 0:
			return true
		case 1:
			return f(low)
		default:
			var b0, b1 bool
			mid := low + (high-low)/2
			fork(
				func() { b0 = recur(low, mid) },
				func() { b1 = recur(mid, high) },
			)
			return b0 && b1
		}
	}
	return recur(0, n)
}
