package harness

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{name: "defaults"},
		{name: "single size", opts: []Option{WithSizes(10, 11, 5)}},
		{name: "zero start", opts: []Option{WithSizes(0, 10, 1)}, wantErr: true},
		{name: "zero step", opts: []Option{WithSizes(1, 10, 0)}, wantErr: true},
		{name: "empty range", opts: []Option{WithSizes(10, 10, 1)}, wantErr: true},
		{name: "inverted range", opts: []Option{WithSizes(10, 5, 1)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfig(tt.opts...).Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSizes(t *testing.T) {
	assert.Equal(t,
		[]int{200_000, 400_000, 600_000, 800_000, 1_000_000, 1_200_000, 1_400_000, 1_600_000},
		Sizes(NewConfig()))
	assert.Equal(t, []int{5, 8}, Sizes(NewConfig(WithSizes(5, 10, 3))))
	assert.Nil(t, Sizes(NewConfig(WithSizes(5, 1, 3))))
}

func TestMeasure(t *testing.T) {
	values := []uint32{0, 1, 2}
	sample := Measure(values, func(v []uint32) uint64 {
		time.Sleep(time.Millisecond)
		return uint64(len(v))
	})
	assert.Equal(t, 3, sample.Size)
	assert.Equal(t, uint64(3), sample.Result)
	assert.GreaterOrEqual(t, sample.Duration, time.Millisecond)
}

func TestSweepDefaultVariants(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	cfg := NewConfig(WithSizes(1_000, 5_000, 1_000), WithLogger(logger))
	report, err := Sweep(context.Background(), cfg, DefaultVariants()...)
	require.NoError(t, err)
	require.Len(t, report.Series, 2)

	assert.Equal(t, "sort", report.Series[0].Name)
	assert.Equal(t, "hash", report.Series[1].Name)
	for _, series := range report.Series {
		require.Len(t, series.Samples, 4)
		for i, sample := range series.Samples {
			assert.Equal(t, 1_000*(i+1), sample.Size)
			assert.Equal(t, report.Series[0].Samples[i].Result, sample.Result)
		}
	}

	assert.Len(t, hook.AllEntries(), 8)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "hash", entry.Data["variant"])
	assert.Equal(t, 4_000, entry.Data["size"])
}

func TestSweepIsReproducible(t *testing.T) {
	cfg := NewConfig(WithSizes(100, 1_000, 300), WithSeed(7))
	first, err := Sweep(context.Background(), cfg, DefaultVariants()...)
	require.NoError(t, err)
	second, err := Sweep(context.Background(), cfg, DefaultVariants()...)
	require.NoError(t, err)

	for i := range first.Series {
		for j := range first.Series[i].Samples {
			assert.Equal(t, first.Series[i].Samples[j].Result, second.Series[i].Samples[j].Result)
		}
	}
}

func TestSweepDetectsMismatch(t *testing.T) {
	broken := Variant{Name: "broken", Fn: func([]uint32) uint64 { return 1 << 40 }}
	variants := append(DefaultVariants()[:1], broken)

	_, err := Sweep(context.Background(), NewConfig(WithSizes(10, 20, 10)), variants...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.Contains(t, err.Error(), "broken")
}

func TestSweepRejectsBadInput(t *testing.T) {
	_, err := Sweep(context.Background(), NewConfig(WithSizes(0, 1, 1)), DefaultVariants()...)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = Sweep(context.Background(), NewConfig(WithSizes(1, 2, 1)))
	assert.Error(t, err)
}

func TestSweepHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Sweep(ctx, NewConfig(WithSizes(10, 100, 10)), DefaultVariants()...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, report.Series[0].Samples)
}
