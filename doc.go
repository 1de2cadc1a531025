// Package recipsum provides functions for computing the sum of
// reciprocals of a float64 slice with parallel divide-and-conquer
// execution. While Go is primarily designed for concurrent
// programming, it is also usable to some extent for parallel
// programming, and this library trades the simplicity of a single
// sequential loop for multi-core throughput on large inputs.
//
// Recipsum provides the following subpackages:
//
// recipsum/parallel computes the reciprocal sum by recursively
// splitting the index range into chunks that are reduced in their own
// goroutines and combined in a fixed order.
//
// recipsum/pool computes the same reduction on a fixed number of
// worker goroutines fed from an explicit queue of subranges, for
// environments where unbounded goroutine spawning is undesirable.
//
// recipsum/sequential provides the purely sequential baseline with
// identical numeric semantics. This is useful for testing and
// debugging, and serves as the base case of the parallel recursion.
//
// The root package holds the chunk partitioning arithmetic shared by
// the drivers, and a process-wide advisory worker count.
package recipsum
