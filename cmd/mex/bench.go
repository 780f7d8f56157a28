package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/metailurini/mex/chart"
	"github.com/metailurini/mex/harness"
	"github.com/metailurini/mex/randlist"
)

type benchOptions struct {
	start      int
	stop       int
	step       int
	seed       uint64
	outDir     string
	noChart    bool
	cpuProfile bool
}

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time both algorithms over random lists of growing size",
		Long: `The bench command generates one reproducible random list per size,
times the sort-based and the hash-based algorithms on each list, prints
the durations and renders one scatter chart per algorithm.

Example:
  mex bench
  mex bench --start 100000 --stop 1000000 --step 100000 --out /tmp/charts
  mex bench --cpuprofile --no-chart`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.start, "start", 200_000, "First list length")
	cmd.Flags().IntVar(&opts.stop, "stop", 1_700_000, "Upper bound on list lengths, exclusive")
	cmd.Flags().IntVar(&opts.step, "step", 200_000, "Increment between list lengths")
	cmd.Flags().Uint64Var(&opts.seed, "seed", randlist.DefaultSeed, "Seed of the list generator")
	cmd.Flags().StringVar(&opts.outDir, "out", "images", "Directory for charts and profiles")
	cmd.Flags().BoolVar(&opts.noChart, "no-chart", false, "Skip chart rendering")
	cmd.Flags().BoolVar(&opts.cpuProfile, "cpuprofile", false, "Write a CPU profile to the output directory")
	return cmd
}

func runBench(ctx context.Context, out io.Writer, opts benchOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := harness.NewConfig(
		harness.WithSizes(opts.start, opts.stop, opts.step),
		harness.WithSeed(opts.seed),
		harness.WithLogger(log),
	)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !opts.noChart || opts.cpuProfile {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}
	if opts.cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.outDir), profile.Quiet).Stop()
	}

	log.WithField("sizes", len(harness.Sizes(cfg))).Info("Starting sweep.")
	report, err := harness.Sweep(ctx, cfg, harness.DefaultVariants()...)
	if err != nil {
		return errors.Wrap(err, "running sweep")
	}

	if err := printReport(out, report); err != nil {
		return err
	}
	if opts.noChart {
		return nil
	}
	for i, series := range report.Series {
		filename := filepath.Join(opts.outDir, chart.FileName(i+1, series.Name))
		if err := chart.Render(filename, series.Title, series.Samples); err != nil {
			return err
		}
		log.WithField("file", filename).Info("Result has been saved.")
	}
	return nil
}

func printReport(out io.Writer, report harness.Report) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, series := range report.Series {
		fmt.Fprintf(w, "%s\n", series.Title)
		fmt.Fprintf(w, "SIZE\tDURATION\tRESULT\n")
		for _, s := range series.Samples {
			fmt.Fprintf(w, "%s\t%v\t%d\n", humanize.Comma(int64(s.Size)), s.Duration, s.Result)
		}
		fmt.Fprintln(w)
	}
	return errors.Wrap(w.Flush(), "writing report")
}
