// Package pool computes the reciprocal sum of a float64 slice on a
// fixed number of worker goroutines.
//
// Where package parallel spawns a goroutine per split, this package
// first flattens the task tree into its leaf subranges and then feeds
// them to a bounded set of workers, which is preferable when the
// number of live goroutines must stay under control. The decomposition
// rule (threshold plus numTasks-way chunking) is the same as in
// package parallel, and leaf values are combined in ascending leaf
// order, so results are reproducible independently of the worker
// count and of scheduling.
package pool

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/exascience/recipsum"
	"github.com/exascience/recipsum/internal"
	"github.com/exascience/recipsum/sequential"
)

// A Pool reduces slices on a bounded number of worker goroutines.
// The zero value is not usable; use New.
type Pool struct {
	workers int
}

// New returns a Pool with the given number of workers. If workers is
// 0, the process-wide advisory count recipsum.Workers() is used.
//
// New panics if workers < 0.
func New(workers int) *Pool {
	if workers < 0 {
		panic(fmt.Sprintf("invalid number of workers: %v", workers))
	}
	if workers == 0 {
		workers = recipsum.Workers()
	}
	return &Pool{workers: workers}
}

// Workers returns the number of worker goroutines the pool uses.
func (p *Pool) Workers() int {
	return p.workers
}

// Sum returns the sum of the reciprocals of all elements of input.
//
// The slice is decomposed into leaf subranges exactly as
// parallel.SumRange would with the same numTasks and threshold, the
// leaves are reduced on at most Workers() goroutines, and the leaf
// values are summed in ascending leaf order. A threshold of 0 selects
// recipsum.DefaultThreshold.
//
// Sum panics if numTasks < 1 or threshold < 0.
func (p *Pool) Sum(input []float64, numTasks, threshold int) float64 {
	internal.CheckNumTasks(numTasks)
	switch {
	case threshold == 0:
		threshold = recipsum.DefaultThreshold
	case threshold < 0:
		panic(fmt.Sprintf("invalid threshold: %v", threshold))
	}
	leaves := leafRanges(nil, 0, len(input), numTasks, threshold)
	values := make([]float64, len(leaves))
	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, leaf := range leaves {
		i, leaf := i, leaf
		g.Go(func() error {
			values[i] = sequential.SumRange(input, leaf.low, leaf.high)
			return nil
		})
	}
	g.Wait() // the workers never return errors
	var result float64
	for _, value := range values {
		result += value
	}
	return result
}

type span struct {
	low, high int
}

// leafRanges appends the leaf subranges of the task tree over
// [low, high) to leaves, in left-to-right order.
func leafRanges(leaves []span, low, high, numTasks, threshold int) []span {
	if numTasks == 1 || high-low <= threshold {
		return append(leaves, span{low, high})
	}
	for chunk := 0; chunk < numTasks; chunk++ {
		l, h := recipsum.ChunkBounds(chunk, numTasks, high-low)
		leaves = leafRanges(leaves, low+l, low+h, numTasks, threshold)
	}
	return leaves
}
