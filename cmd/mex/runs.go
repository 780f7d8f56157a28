package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/metailurini/mex"
)

func init() {
	rootCmd.AddCommand(newRunsCmd())
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs [file]",
		Short: "Print the maximal runs of consecutive values in a list",
		Long: `The runs command reads integers like solve does and prints each maximal
run of consecutive values as "[low, high]" followed by its length.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := loadValues(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runRuns(cmd.OutOrStdout(), values)
		},
	}
}

// runRuns prints every maximal run of consecutive values, one per line.
func runRuns(out io.Writer, values []uint32) error {
	for _, r := range mex.Runs(values) {
		if _, err := fmt.Fprintf(out, "%s\t%d\n", r, r.Len()); err != nil {
			return errors.Wrap(err, "writing run")
		}
	}
	return nil
}
