// Package parallel computes the reciprocal sum of a float64 slice by
// recursive divide and conquer.
//
// A range longer than the threshold is split into numTasks contiguous
// chunks, each reduced by a recursive task of its own, with the same
// fan-out applied again at every level until the chunks fit under the
// threshold. The first chunk of every split is reduced on the calling
// goroutine, the others each in a goroutine of their own. Chunk
// values are always combined in ascending chunk order, regardless of
// the order in which the goroutines finish, so the result of a call
// depends only on its arguments and never on scheduling.
package parallel

import (
	"fmt"
	"sync"

	"github.com/exascience/recipsum"
	"github.com/exascience/recipsum/internal"
	"github.com/exascience/recipsum/sequential"
)

// Sum returns the sum of the reciprocals of all elements of input,
// computed by numTasks-way recursive splitting with the default
// threshold. A nil or empty slice sums to 0.
//
// Sum panics if numTasks < 1.
func Sum(input []float64, numTasks int) float64 {
	return SumRange(input, 0, len(input), numTasks, 0)
}

// SumRange returns the sum of the reciprocals of the elements of
// input in the half-open interval from low to high, including low but
// excluding high, computed by numTasks-way recursive splitting.
//
// A subrange of at most threshold elements is reduced sequentially.
// If threshold is 0, recipsum.DefaultThreshold is used. With numTasks
// equal to 1 the whole range is reduced sequentially at once.
//
// The input slice is only read, and is safely shared by all tasks
// without synchronization.
//
// SumRange panics if low < 0, high < low, high > len(input),
// numTasks < 1, or threshold < 0.
//
// If one or more tasks panic, the corresponding goroutines recover
// the panics, and SumRange eventually panics with the left-most
// recovered panic value.
func SumRange(input []float64, low, high, numTasks, threshold int) float64 {
	internal.CheckRange(low, high, len(input))
	internal.CheckNumTasks(numTasks)
	switch {
	case threshold == 0:
		threshold = recipsum.DefaultThreshold
	case threshold < 0:
		panic(fmt.Sprintf("invalid threshold: %v", threshold))
	}
	return sum(input, low, high, numTasks, threshold)
}

func sum(input []float64, low, high, numTasks, threshold int) float64 {
	if numTasks == 1 || high-low <= threshold {
		return sequential.SumRange(input, low, high)
	}
	values := make([]float64, numTasks)
	panics := make([]interface{}, numTasks)
	var wg sync.WaitGroup
	wg.Add(numTasks - 1)
	for chunk := 1; chunk < numTasks; chunk++ {
		go func(chunk int) {
			defer func() {
				panics[chunk] = internal.WrapPanic(recover())
				wg.Done()
			}()
			l, h := recipsum.ChunkBounds(chunk, numTasks, high-low)
			values[chunk] = sum(input, low+l, low+h, numTasks, threshold)
		}(chunk)
	}
	l, h := recipsum.ChunkBounds(0, numTasks, high-low)
	values[0] = sum(input, low+l, low+h, numTasks, threshold)
	wg.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	var result float64
	for _, value := range values {
		result += value
	}
	return result
}
