// Package sequential provides RangeAnd, a range predicate combinator
// that runs its batches one after another instead of in parallel. This is
// useful for testing and debugging: a sequential RangeAnd cannot hide
// the same race or short-circuit bug that a buggy parallel
// implementation of the same contract might.
//
// It is not recommended to use the implementations of this package
// for any other purpose, because they are almost certainly too
// inefficient for regular sequential programs.
package sequential

import (
	"fmt"

	"github.com/parsortlab/parsort/internal"
)

// RangeAnd receives a range, a batch count n, and a range
// predicate function f, divides the range into batches, and
// invokes the range predicate for each of these batches sequentially,
// covering the half-open interval from low to high, including low but
// excluding high.
//
// The range is specified by a low and high integer, with low <=
// high. The batches are determined by dividing up the size of the
// range (high - low) by n. If n is 0, a reasonable default is used
// that takes runtime.GOMAXPROCS(0) into account.
//
// RangeAnd returns by combining all return values with the &&
// operator. RangeAnd also returns the left-most error value that
// is different from nil as a second return value.
//
// RangeAnd panics if high < low, or if n < 0.
func RangeAnd(
	low, high, n int,
	f func(low, high int) (bool, error),
) (bool, error) {
	var recur func(int, int, int) (bool, error)
	recur = func(low, high, n int) (result bool, err error) {
		switch {
		case n == 1:
			return f(low, high)
		case n > 1:
			batchSize := ((high - low - 1) / n) + 1
			half := n / 2
			mid := low + batchSize*half
			if mid >= high {
				return f(low, high)
			}
			b0, err0 := recur(low, mid, half)
			b1, err1 := recur(mid, high, n-half)
			result = b0 && b1
			if err0 != nil {
				err = err0
			} else {
				err = err1
			}
			return
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
	}
	return recur(low, high, internal.ComputeNofBatches(low, high, n))
}
