package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biome-painter/internal/climate"
	"biome-painter/internal/core"
	"biome-painter/internal/report"
)

func islandInput() climate.Input {
	size := core.Size{W: 48, H: 24}
	land := make([]uint8, size.Cells())
	mountain := make([]uint8, size.Cells())
	for y := 4; y < 20; y++ {
		for x := 10; x < 38; x++ {
			land[size.Index(x, y)] = 1
		}
	}
	for y := 6; y < 18; y++ {
		mountain[size.Index(20, y)] = 1
	}
	return climate.Input{Size: size, Land: land, Mountain: mountain}
}

func TestRange(t *testing.T) {
	got, err := Range(0, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5, 10}, got)

	got, err = Range(4, 1, -2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, got)

	_, err = Range(0, 10, 0)
	assert.ErrorIs(t, err, ErrBadRange)
	_, err = Range(10, 0, 1)
	assert.ErrorIs(t, err, ErrBadRange)
	_, err = Range(0, 1<<20, 1)
	assert.ErrorIs(t, err, ErrBadRange)
}

func TestApply(t *testing.T) {
	k := climate.DefaultKnobs()
	require.NoError(t, Apply(&k, "coast_range", 3))
	assert.Equal(t, 3, k.CoastRange)
	require.NoError(t, Apply(&k, "itcz_floor", 0))
	assert.False(t, k.ITCZFloor)
	assert.ErrorIs(t, Apply(&k, "nope", 1), ErrUnknownKnob)
}

func TestRunMatchesDirectCompute(t *testing.T) {
	in := islandInput()
	base := climate.DefaultKnobs()
	values := []int{0, 1, 2, 3, 4}

	rows, err := Run(context.Background(), in, base, "shadow_strength", values, 3)
	require.NoError(t, err)
	require.Len(t, rows, len(values))

	for i, v := range values {
		k := base
		k.ShadowStrength = v
		res, err := climate.Compute(in, k)
		require.NoError(t, err)
		want := report.NewSweepRow("shadow_strength", v, report.Summarize(res))
		assert.Equal(t, want, rows[i], "value %d", v)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	in := islandInput()
	_, err := Run(context.Background(), in, climate.DefaultKnobs(), "bogus", []int{1}, 1)
	assert.ErrorIs(t, err, ErrUnknownKnob)

	in.Land = in.Land[:10]
	_, err = Run(context.Background(), in, climate.DefaultKnobs(), "cooling", []int{1}, 1)
	assert.ErrorIs(t, err, climate.ErrMaskLength)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, islandInput(), climate.DefaultKnobs(), "cooling", []int{0, 1, 2}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
