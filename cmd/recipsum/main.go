// Command recipsum benchmarks the reciprocal sum drivers against each
// other on a synthetic array and verifies that they agree.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exascience/recipsum"
	"github.com/exascience/recipsum/parallel"
	"github.com/exascience/recipsum/pool"
	"github.com/exascience/recipsum/sequential"
)

var (
	size      int
	numTasks  int
	threshold int
	workers   int
	rounds    int
)

const tolerance = 1e-9

// makeInput fills a deterministic array with values cycling through
// 1..1000, so runs are comparable across invocations.
func makeInput(n int) []float64 {
	input := make([]float64, n)
	for i := range input {
		input[i] = float64(i%1000) + 1
	}
	return input
}

func relativeError(want, got float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if workers > 0 {
		recipsum.SetWorkers(workers)
	}
	logger.Info("configuration",
		zap.Int("size", size),
		zap.Int("tasks", numTasks),
		zap.Int("threshold", threshold),
		zap.Int("workers", recipsum.Workers()),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
	)

	input := makeInput(size)
	pooled := pool.New(0)

	for round := 0; round < rounds; round++ {
		start := time.Now()
		seqSum := sequential.Sum(input)
		seqTime := time.Since(start)

		start = time.Now()
		parSum := parallel.SumRange(input, 0, len(input), numTasks, threshold)
		parTime := time.Since(start)

		start = time.Now()
		poolSum := pooled.Sum(input, numTasks, threshold)
		poolTime := time.Since(start)

		logger.Info("round",
			zap.Int("round", round),
			zap.Float64("sum", seqSum),
			zap.Duration("sequential", seqTime),
			zap.Duration("parallel", parTime),
			zap.Duration("pool", poolTime),
			zap.Float64("speedup", seqTime.Seconds()/parTime.Seconds()),
		)

		if e := relativeError(seqSum, parSum); e > tolerance {
			return fmt.Errorf("parallel driver disagrees with sequential baseline: %v vs %v (relative error %v)", parSum, seqSum, e)
		}
		if e := relativeError(seqSum, poolSum); e > tolerance {
			return fmt.Errorf("pool driver disagrees with sequential baseline: %v vs %v (relative error %v)", poolSum, seqSum, e)
		}
	}
	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:          "recipsum",
		Short:        "Benchmark the parallel reciprocal sum drivers",
		RunE:         run,
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&size, "size", 10_000_000, "number of array elements")
	cmd.Flags().IntVar(&numTasks, "tasks", 2*runtime.GOMAXPROCS(0), "fan-out of every split")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "maximum sequential subrange length (0 selects the default)")
	cmd.Flags().IntVar(&workers, "workers", 0, "advisory worker count for the pool driver (0 selects GOMAXPROCS)")
	cmd.Flags().IntVar(&rounds, "rounds", 3, "number of measurement rounds")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
