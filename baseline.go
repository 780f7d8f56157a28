package mex

import "slices"

// SmallestMissingSorted computes the same answer as SmallestMissing by sorting
// a copy of values and scanning for the first gap. It is O(n log n) and kept
// as a reference for SmallestMissing.
func SmallestMissingSorted(values []uint32) uint64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if len(sorted) == 0 || sorted[0] > 0 {
		return 0
	}
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i+1]-sorted[i] > 1 {
			return uint64(sorted[i]) + 1
		}
	}
	return uint64(sorted[len(sorted)-1]) + 1
}
