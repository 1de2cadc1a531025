package recipsum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkSize(t *testing.T) {
	tests := []struct {
		nChunks, nElements, want int
	}{
		{1, 0, 0},
		{4, 0, 0},
		{1, 7, 7},
		{2, 7, 4},
		{3, 7, 3},
		{7, 7, 1},
		{8, 7, 1},
		{4, 10, 3},
		{3, 9, 3},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ChunkSize(tt.nChunks, tt.nElements),
			"ChunkSize(%d, %d)", tt.nChunks, tt.nElements)
	}
}

// TestChunkBoundsCoverage checks that for any chunk count and element
// count the chunks partition the element range exactly: contiguous,
// pairwise disjoint, no element skipped or covered twice, and no
// chunk longer than the computed chunk size.
func TestChunkBoundsCoverage(t *testing.T) {
	for _, nElements := range []int{0, 1, 2, 3, 7, 10, 100, 101, 127, 1000, 1023} {
		for _, nChunks := range []int{1, 2, 3, 4, 7, 8, 16, 150} {
			size := ChunkSize(nChunks, nElements)
			next := 0
			for chunk := 0; chunk < nChunks; chunk++ {
				low, high := ChunkBounds(chunk, nChunks, nElements)
				require.LessOrEqual(t, low, high,
					"chunk %d of %d over %d elements", chunk, nChunks, nElements)
				require.LessOrEqual(t, high-low, size,
					"chunk %d of %d over %d elements", chunk, nChunks, nElements)
				if low < high {
					require.Equal(t, next, low,
						"chunk %d of %d over %d elements", chunk, nChunks, nElements)
					next = high
				}
			}
			require.Equal(t, nElements, next,
				"%d chunks over %d elements", nChunks, nElements)
		}
	}
}

func TestChunkBoundsUneven(t *testing.T) {
	// 10 elements in 4 chunks of size 3: the last chunk is short.
	for chunk, want := range [][2]int{{0, 3}, {3, 6}, {6, 9}, {9, 10}} {
		low, high := ChunkBounds(chunk, 4, 10)
		require.Equal(t, want[0], low)
		require.Equal(t, want[1], high)
	}

	// 2 elements in 4 chunks of size 1: trailing chunks are empty.
	for chunk, want := range [][2]int{{0, 1}, {1, 2}, {2, 2}, {2, 2}} {
		low, high := ChunkBounds(chunk, 4, 2)
		require.Equal(t, want[0], low)
		require.Equal(t, want[1], high)
	}
}

func TestWorkers(t *testing.T) {
	require.Positive(t, Workers())

	require.Panics(t, func() { SetWorkers(0) })
	require.Panics(t, func() { SetWorkers(-3) })

	SetWorkers(3)
	require.Equal(t, 3, Workers())
}
