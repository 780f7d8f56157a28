// Package harness times single invocations of the smallest-missing
// algorithms and sweeps them over lists of growing size.
package harness

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metailurini/mex"
	"github.com/metailurini/mex/randlist"
)

// Func is an algorithm under measurement.
type Func func([]uint32) uint64

// Sample is the duration of one call on a list of Size values.
type Sample struct {
	Size     int
	Duration time.Duration
	Result   uint64
}

// Variant names an algorithm for reports and charts.
type Variant struct {
	// Name is a short identifier, used in file names.
	Name string
	// Title is a human readable description.
	Title string
	Fn    Func
}

// Series holds the samples of one variant, in sweep order.
type Series struct {
	Variant
	Samples []Sample
}

// Report is the outcome of a Sweep, one series per variant.
type Report struct {
	Series []Series
}

// DefaultVariants returns the sort baseline followed by the coalescer.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "sort", Title: "Algorithm Based on Sort", Fn: mex.SmallestMissingSorted},
		{Name: "hash", Title: "Algorithm Based on Hash Table", Fn: mex.SmallestMissing},
	}
}

// Measure times a single call of fn on values.
func Measure(values []uint32, fn Func) Sample {
	start := time.Now()
	result := fn(values)
	elapsed := time.Since(start)
	return Sample{
		Size:     len(values),
		Duration: elapsed,
		Result:   result,
	}
}

// Sweep generates one list per configured size and times every variant on
// it. All variants see the same lists. It fails if variants disagree on any
// list or ctx is done between samples.
func Sweep(ctx context.Context, cfg Config, variants ...Variant) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if len(variants) == 0 {
		return Report{}, errors.New("no variants to sweep")
	}

	gen := randlist.New(cfg.seed)
	report := Report{Series: make([]Series, len(variants))}
	for i, v := range variants {
		report.Series[i].Variant = v
	}

	for _, size := range Sizes(cfg) {
		values := gen.List(size)
		for i, v := range variants {
			if err := ctx.Err(); err != nil {
				return report, errors.Wrap(err, "sweep interrupted")
			}
			sample := Measure(values, v.Fn)
			cfg.logger.WithFields(logrus.Fields{
				"variant":  v.Name,
				"size":     sample.Size,
				"duration": sample.Duration,
				"result":   sample.Result,
			}).Debug("Measured sample.")

			if i > 0 {
				if want := report.Series[0].Samples[len(report.Series[0].Samples)-1].Result; want != sample.Result {
					return report, errors.Wrapf(ErrMismatch, "size %d: %s returned %d, %s returned %d",
						size, variants[0].Name, want, v.Name, sample.Result)
				}
			}
			report.Series[i].Samples = append(report.Series[i].Samples, sample)
		}
	}
	return report, nil
}
