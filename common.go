package recipsum

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// DefaultThreshold is the maximum length of a subrange that is
// reduced sequentially rather than split further, used whenever a
// driver is invoked with a threshold of 0.
//
// The value is a compromise: a sequential pass over this many
// elements is long enough to amortize the cost of spawning a
// goroutine, and short enough to give the scheduler subranges to
// balance across CPUs.
const DefaultThreshold = 100000

// ChunkSize returns the number of elements per chunk when nElements
// elements are divided into nChunks chunks, which is the ceiling of
// nElements / nChunks.
//
// The caller must ensure nChunks >= 1 and nElements >= 0; the result
// is undefined otherwise.
func ChunkSize(nChunks, nElements int) int {
	return (nElements + nChunks - 1) / nChunks
}

// ChunkBounds returns the half-open interval from low to high,
// including low but excluding high, that the given chunk covers when
// nElements elements are divided into nChunks chunks.
//
// The intervals of all chunks from 0 to nChunks-1 are pairwise
// disjoint and their union is exactly the interval from 0 to
// nElements. Every chunk covers at most ChunkSize(nChunks, nElements)
// elements; trailing chunks may cover fewer, or none, when nElements
// is not evenly divisible by nChunks.
//
// The caller must ensure 0 <= chunk < nChunks and nElements >= 0; the
// result is undefined otherwise.
func ChunkBounds(chunk, nChunks, nElements int) (low, high int) {
	size := ChunkSize(nChunks, nElements)
	low = chunk * size
	high = low + size
	if high > nElements {
		high = nElements
	}
	if low > nElements {
		low = nElements
	}
	return
}

var workers int32

// SetWorkers sets the process-wide advisory worker count consulted by
// drivers that are not given an explicit one. It is intended to be
// called at most once, before the first reduction.
//
// SetWorkers panics if n < 1.
func SetWorkers(n int) {
	if n < 1 {
		panic(fmt.Sprintf("invalid number of workers: %v", n))
	}
	atomic.StoreInt32(&workers, int32(n))
}

// Workers returns the process-wide advisory worker count. If
// SetWorkers has not been called, it defaults to
// runtime.GOMAXPROCS(0).
//
// The worker count only affects how much hardware parallelism a
// driver may exploit, never the value it computes.
func Workers() int {
	if n := atomic.LoadInt32(&workers); n > 0 {
		return int(n)
	}
	return runtime.GOMAXPROCS(0)
}
