package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/metailurini/mex/harness"
)

type solveOptions struct {
	algorithm string
}

func init() {
	rootCmd.AddCommand(newSolveCmd())
}

func newSolveCmd() *cobra.Command {
	opts := solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the smallest missing value of a list",
		Long: `The solve command reads integers separated by whitespace or commas from
a file, or from standard input when no file is given, and prints the
smallest non-negative integer that does not occur.

Example:
  echo 0 1 2 3 5 | mex solve
  mex solve --algorithm sort numbers.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := loadValues(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runSolve(cmd.OutOrStdout(), values, opts.algorithm)
		},
	}
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "hash", "Algorithm to use, one of [hash, sort]")
	return cmd
}

func algorithmByName(name string) (harness.Func, error) {
	for _, v := range harness.DefaultVariants() {
		if v.Name == name {
			return v.Fn, nil
		}
	}
	return nil, errors.Errorf("unknown algorithm %q", name)
}

func runSolve(out io.Writer, values []uint32, algorithm string) error {
	fn, err := algorithmByName(algorithm)
	if err != nil {
		return err
	}
	sample := harness.Measure(values, fn)
	log.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"size":      sample.Size,
		"duration":  sample.Duration,
	}).Debug("Solved.")
	_, err = fmt.Fprintln(out, sample.Result)
	return errors.Wrap(err, "writing result")
}
