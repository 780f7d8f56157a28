package mex

import "math"

// zeroInteriorPanic is raised when key 0 ends up interior to a run, which a
// correct coalescer can never produce.
const zeroInteriorPanic = "mex: zero cannot be interior to a run of consecutive values"

// coalescer keeps the maximal runs of consecutive values seen so far.
// Only the two ends of a run carry its extent; keys in between are interior.
type coalescer struct {
	marks      map[uint32]rangeMark
	currentMin uint32
	seen       bool
}

func newCoalescer(capacity int) *coalescer {
	return &coalescer{
		marks:      make(map[uint32]rangeMark, capacity),
		currentMin: math.MaxUint32,
	}
}

// lookupBoundary reports the extent of the run whose boundary sits at key.
func (c *coalescer) lookupBoundary(key uint32) (low, high uint32, ok bool) {
	mark, found := c.marks[key]
	if !found {
		return 0, 0, false
	}
	return mark.boundary()
}

// add inserts v, merging it with the run ending at v-1 and the run starting
// at v+1 when they exist.
func (c *coalescer) add(v uint32) {
	if !c.seen || v < c.currentMin {
		c.currentMin = v
		c.seen = true
	}
	if _, ok := c.marks[v]; ok {
		return
	}

	// MaxUint32 has no right neighbor.
	hasRight := v < math.MaxUint32
	upper := v
	if hasRight {
		if _, high, ok := c.lookupBoundary(v + 1); ok {
			upper = high
		}
	}

	lower := v
	if v > 0 {
		if low, _, ok := c.lookupBoundary(v - 1); ok {
			lower = low
		}
	}

	merged := boundaryMark(lower, upper)
	c.marks[lower] = merged
	c.marks[upper] = merged

	if hasRight && v+1 < upper {
		c.marks[v+1] = interiorMark()
	}
	if v > 0 && v-1 > lower {
		c.marks[v-1] = interiorMark()
	}
	if lower < v && v < upper {
		c.marks[v] = interiorMark()
	}
}

// smallestMissing returns one past the end of the run starting at 0, or 0
// when 0 was never added.
func (c *coalescer) smallestMissing() uint64 {
	if !c.seen || c.currentMin > 0 {
		return 0
	}
	_, high, ok := c.lookupBoundary(0)
	if !ok {
		panic(zeroInteriorPanic)
	}
	return uint64(high) + 1
}

// SmallestMissing returns the smallest non-negative integer absent from
// values. It runs in expected linear time using a map of run boundaries and
// never sorts. Duplicates and ordering of values have no effect.
//
// The result is widened to uint64: if every value in [0, math.MaxUint32] is
// present the answer is 1<<32.
func SmallestMissing(values []uint32) uint64 {
	if len(values) == 0 {
		return 0
	}
	c := newCoalescer(len(values))
	for _, v := range values {
		c.add(v)
	}
	return c.smallestMissing()
}
