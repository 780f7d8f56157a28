// Package mex finds the smallest non-negative integer missing from an
// unordered list of unsigned 32-bit values.
//
// SmallestMissing coalesces values into maximal runs of consecutive integers
// as they arrive, keeping the run extent only at each run's two ends, and
// answers in expected linear time. SmallestMissingSorted is the sort-and-scan
// reference it is checked and benchmarked against.
package mex
