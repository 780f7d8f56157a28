package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	logFormat string
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "mex",
	Short: "Find the smallest non-negative integer missing from a list",
	Long: `mex reads lists of unsigned 32-bit integers and reports the smallest
non-negative integer absent from them. The bench command compares the
hash-based coalescing algorithm against a sort-based baseline.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(log, verbose, logFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format, one of [text, json]")
}

func setupLogging(logger *logrus.Logger, debug bool, format string) error {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	switch format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", format)
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command failed.")
		os.Exit(1)
	}
}
