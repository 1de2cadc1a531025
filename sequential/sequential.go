// Package sequential provides the purely sequential reciprocal sum,
// with numeric semantics identical to the parallel and pool drivers.
// This is useful for testing and debugging, and is the base case of
// the parallel recursion.
package sequential

import (
	"github.com/exascience/recipsum/internal"
)

// Sum returns the sum of the reciprocals of all elements of input.
// A nil or empty slice sums to 0.
func Sum(input []float64) float64 {
	return SumRange(input, 0, len(input))
}

// SumRange returns the sum of the reciprocals of the elements of
// input in the half-open interval from low to high, including low but
// excluding high.
//
// The elements are accumulated in ascending index order, so repeated
// calls with the same arguments return bit-identical results.
//
// Elements equal to zero are not guarded against: the division
// follows IEEE-754 semantics, and a resulting infinity or NaN
// propagates through the sum.
//
// SumRange panics if low < 0, high < low, or high > len(input).
func SumRange(input []float64, low, high int) float64 {
	internal.CheckRange(low, high, len(input))
	var sum float64
	for i := low; i < high; i++ {
		sum += 1 / input[i]
	}
	return sum
}
