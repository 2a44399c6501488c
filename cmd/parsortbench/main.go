// Command parsortbench runs one PSRS or Bitonic sort over an in-process
// simulated group of ranks, verifies the result, and appends one row of
// timings to a CSV log.
//
// Usage:
//
//	parsortbench [-ranks N] <algorithm> <problem_size> <output_csv_path>
//
// The launcher that would normally start P separate MPI ranks is out of
// scope for this program (see the package docs of transport); -ranks
// plays that role here, starting P goroutines within this one process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/parsortlab/parsort"
	"github.com/parsortlab/parsort/bitonic"
	"github.com/parsortlab/parsort/gendata"
	"github.com/parsortlab/parsort/psrs"
	"github.com/parsortlab/parsort/report"
	"github.com/parsortlab/parsort/timing"
	"github.com/parsortlab/parsort/transport"
	"github.com/parsortlab/parsort/verify"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// invalidArguments is the sentinel printed to stderr, and the exit code 1
// signal, for malformed CLI usage.
type invalidArguments struct{ reason string }

func (e invalidArguments) Error() string { return e.reason }

func run(args []string) int {
	fs := flag.NewFlagSet("parsortbench", flag.ContinueOnError)
	ranks := fs.Int("ranks", runtime.NumCPU(), "number of simulated ranks")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	algo, n, outPath, err := parseArgs(fs.Args(), *ranks)
	if err != nil {
		log.Printf("error: %v", err)
		printUsage()
		return 1
	}

	verified, err := bench(context.Background(), algo, *ranks, n, outPath)
	if err != nil {
		log.Printf("error: %v", err)
		return 1
	}
	if !verified {
		log.Printf("error: verification failed")
		return 1
	}
	return 0
}

func parseArgs(positional []string, ranks int) (parsort.Algorithm, int64, string, error) {
	if len(positional) != 3 {
		return 0, 0, "", invalidArguments{fmt.Sprintf("want 3 positional arguments <algorithm> <problem_size> <output_csv_path>, got %d", len(positional))}
	}
	algo, err := parsort.ParseAlgorithm(positional[0])
	if err != nil {
		return 0, 0, "", invalidArguments{err.Error()}
	}
	var n int64
	if _, err := fmt.Sscanf(positional[1], "%d", &n); err != nil || n < 0 {
		return 0, 0, "", invalidArguments{fmt.Sprintf("problem_size must be a non-negative integer, got %q", positional[1])}
	}
	if ranks <= 0 {
		return 0, 0, "", invalidArguments{fmt.Sprintf("-ranks must be positive, got %d", ranks)}
	}
	return algo, n, positional[2], nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: parsortbench [-ranks N] <algorithm> <problem_size> <output_csv_path>")
	fmt.Fprintln(os.Stderr, "  algorithm: psrs or bitonic")
}

// bench runs one full benchmark invocation: generate, sort, verify, report.
// It returns whether the global verification passed; a non-nil error
// indicates a transport failure or a CSV write failure, both fatal.
func bench(ctx context.Context, algo parsort.Algorithm, size int, n int64, outPath string) (bool, error) {
	log.Printf("Parallel Sorting Benchmark")
	log.Printf("==========================")
	log.Printf("Algorithm:     %s", algo)
	log.Printf("Problem size:  %d", n)
	log.Printf("Ranks:         %d", size)
	log.Printf("Output file:   %s", outPath)
	log.Printf("==========================")

	world := transport.NewLocalWorld(size)
	records := make([]timing.Record, size)
	verdicts := make([]bool, size)
	finalSizes := make([]float64, size)

	var g errgroup.Group
	for i, w := range world {
		i, w := i, w
		g.Go(func() error {
			block := gendata.Generate(i, parsort.LocalSize(n, i, size))

			if err := w.Barrier(ctx); err != nil {
				return err
			}

			var err error
			switch algo {
			case parsort.PSRS:
				err = psrs.Sort(ctx, w, &block, &records[i])
			case parsort.Bitonic:
				err = bitonic.Sort(ctx, w, &block, &records[i])
			}
			if err != nil {
				return err
			}

			ok, err := verify.Sorted(ctx, w, block)
			if err != nil {
				return err
			}
			verdicts[i] = ok
			finalSizes[i] = float64(len(block))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	verified := true
	for _, ok := range verdicts {
		verified = verified && ok
	}

	balance := report.ComputeBalance(finalSizes)
	log.Printf("block size balance: mean=%.1f stddev=%.1f min=%.0f max=%.0f", balance.Mean, balance.StdDev, balance.Min, balance.Max)

	totals := make([]float64, size)
	localSorts := make([]float64, size)
	comms := make([]float64, size)
	merges := make([]float64, size)
	for i, r := range records {
		totals[i], localSorts[i], comms[i], merges[i] = r.Total, r.LocalSort, r.Communication, r.Merge
	}

	row := report.Row{
		NumRanks:          size,
		ProblemSize:       n,
		TotalTime:         floats.Max(totals),
		LocalSortTime:     report.Mean(localSorts),
		CommunicationTime: report.Mean(comms),
		MergeTime:         report.Mean(merges),
	}
	if err := report.Append(outPath, row); err != nil {
		return false, err
	}

	log.Printf("verified: %v", verified)
	return verified, nil
}
