// Package sweep evaluates the classifier over a range of one climate knob.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"biome-painter/internal/climate"
	"biome-painter/internal/report"
)

var (
	// ErrUnknownKnob is returned for keys that are not climate knobs.
	ErrUnknownKnob = errors.New("sweep: unknown knob")
	// ErrBadRange is returned when a range yields no values.
	ErrBadRange = errors.New("sweep: empty range")
)

// maxValues bounds a single sweep.
const maxValues = 10000

// Range expands from..to in steps of step. A negative step walks downward.
func Range(from, to, step int) ([]int, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: step is zero", ErrBadRange)
	}
	if (step > 0 && from > to) || (step < 0 && from < to) {
		return nil, fmt.Errorf("%w: %d..%d step %d", ErrBadRange, from, to, step)
	}
	var out []int
	for v := from; (step > 0 && v <= to) || (step < 0 && v >= to); v += step {
		out = append(out, v)
		if len(out) > maxValues {
			return nil, fmt.Errorf("%w: more than %d values", ErrBadRange, maxValues)
		}
	}
	return out, nil
}

// Apply sets knob key to v. Boolean knobs treat any non-zero value as true.
func Apply(k *climate.Knobs, key string, v int) error {
	if dst, ok := k.IntKnob(key); ok {
		*dst = v
		return nil
	}
	if dst, ok := k.BoolKnob(key); ok {
		*dst = v != 0
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKnob, key)
}

// Run classifies in once per value with knob overridden on top of base and
// returns one row per value, in value order. workers <= 0 uses GOMAXPROCS.
func Run(ctx context.Context, in climate.Input, base climate.Knobs, knob string, values []int, workers int) ([]report.SweepRow, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	probe := base
	if err := Apply(&probe, knob, 0); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make([]report.SweepRow, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for idx, value := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			k := base
			if err := Apply(&k, knob, value); err != nil {
				return err
			}
			res, err := climate.Compute(in, k)
			if err != nil {
				return fmt.Errorf("%s=%d: %w", knob, value, err)
			}
			rows[idx] = report.NewSweepRow(knob, value, report.Summarize(res))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
