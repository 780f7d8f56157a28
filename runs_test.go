package mex

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuns(t *testing.T) {
	values := []uint32{
		7, 2, 1,
		4, 15, 14, 17, 16,
		8, 9,
	}
	want := []Run{
		{1, 2}, {4, 4}, {7, 9}, {14, 17},
	}
	assert.Equal(t, want, Runs(values))
}

func TestRunsEdgeCases(t *testing.T) {
	assert.Nil(t, Runs(nil))
	assert.Equal(t, []Run{{0, 0}}, Runs([]uint32{0, 0}))
	assert.Equal(t,
		[]Run{{0, 1}, {math.MaxUint32 - 1, math.MaxUint32}},
		Runs([]uint32{math.MaxUint32, 1, math.MaxUint32 - 1, 0}))
}

func TestRunMethods(t *testing.T) {
	r := Run{Low: 3, High: 5}
	assert.Equal(t, uint64(3), r.Len())
	assert.Equal(t, "[3, 5]", r.String())
	assert.True(t, r.Contains(3))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))

	full := Run{Low: 0, High: math.MaxUint32}
	assert.Equal(t, uint64(1)<<32, full.Len())
}

func TestRunsPartitionDistinctValues(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		size := 1 + rng.Intn(300)
		values := make([]uint32, size)
		distinct := make(map[uint32]struct{})
		for j := range values {
			values[j] = uint32(rng.Intn(size))
			distinct[values[j]] = struct{}{}
		}

		runs := Runs(values)
		var covered uint64
		for j, r := range runs {
			require.LessOrEqual(t, r.Low, r.High)
			for v := r.Low; v <= r.High; v++ {
				_, ok := distinct[v]
				require.True(t, ok, "run %s covers missing %d", r, v)
			}
			covered += r.Len()
			if j > 0 {
				require.Greater(t, r.Low, runs[j-1].High+1, "runs %s and %s touch", runs[j-1], r)
			}
		}
		require.Equal(t, uint64(len(distinct)), covered)

		want := uint64(0)
		if runs[0].Low == 0 {
			want = uint64(runs[0].High) + 1
		}
		require.Equal(t, want, SmallestMissing(values))
	}
}
