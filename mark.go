package mex

// rangeMark is the value stored per key in the coalescer map.
// A mark is either interior to some run or a boundary of the run [low, high].
type rangeMark struct {
	interior bool
	low      uint32
	high     uint32
}

func interiorMark() rangeMark {
	return rangeMark{interior: true}
}

func boundaryMark(low, high uint32) rangeMark {
	return rangeMark{low: low, high: high}
}

// boundary returns the run extent if the mark is a boundary.
func (r rangeMark) boundary() (low, high uint32, ok bool) {
	if r.interior {
		return 0, 0, false
	}
	return r.low, r.high, true
}
