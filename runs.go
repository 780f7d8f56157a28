package mex

import (
	"cmp"
	"fmt"
	"slices"
)

// Run is an inclusive range [Low, High] of consecutive values that are all
// present in an input.
type Run struct {
	Low  uint32
	High uint32
}

// Len returns the number of values in the run.
func (r Run) Len() uint64 {
	return uint64(r.High) - uint64(r.Low) + 1
}

// Contains reports whether v lies within the run.
func (r Run) Contains(v uint32) bool {
	return r.Low <= v && v <= r.High
}

func (r Run) String() string {
	return fmt.Sprintf("[%d, %d]", r.Low, r.High)
}

// Runs returns the maximal runs of consecutive values in values, ordered by
// Low. Each distinct value belongs to exactly one run.
func Runs(values []uint32) []Run {
	if len(values) == 0 {
		return nil
	}
	c := newCoalescer(len(values))
	for _, v := range values {
		c.add(v)
	}
	return c.runs()
}

// runs collects every run once, from the boundary at its low end.
func (c *coalescer) runs() []Run {
	var out []Run
	for key, mark := range c.marks {
		low, high, ok := mark.boundary()
		if !ok || key != low {
			continue
		}
		out = append(out, Run{Low: low, High: high})
	}
	slices.SortFunc(out, func(a, b Run) int {
		return cmp.Compare(a.Low, b.Low)
	})
	return out
}
