package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"biome-painter/internal/climate"
	"biome-painter/internal/config"
	"biome-painter/internal/core"
	"biome-painter/internal/mapgen"
	"biome-painter/internal/report"
	"biome-painter/internal/store"
	"biome-painter/internal/sweep"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML config file layered over the defaults")
	knob := flag.String("knob", "coast_range", "climate knob to sweep")
	from := flag.Int("from", 0, "first value")
	to := flag.Int("to", 30, "last value (inclusive)")
	step := flag.Int("step", 2, "value increment")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel evaluations")
	width := flag.Int("width", 360, "map width for sweep runs")
	height := flag.Int("height", 180, "map height for sweep runs")
	seed := flag.Int64("seed", 0, "generator seed (0 keeps the config seed)")
	gen := flag.String("gen", "", "mask generator (empty keeps the config generator)")
	mapName := flag.String("map", "", "sweep a saved map instead of generating one")
	outDir := flag.String("out", "", "output directory (empty keeps the config dir)")
	var overrides kvList
	flag.Var(&overrides, "set", "climate knob override in key=value form (repeatable)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	cfg.World.Width = *width
	cfg.World.Height = *height
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *gen != "" {
		cfg.World.Generator = *gen
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	opts := cfg.SimOptions()
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			logger.Warn("ignoring malformed override", "set", kv)
			continue
		}
		opts[key] = value
	}
	cfg.Climate = climate.KnobsFromMap(opts)

	values, err := sweep.Range(*from, *to, *step)
	if err != nil {
		logger.Error("invalid range", "error", err)
		os.Exit(2)
	}

	mapgen.RegisterContinents(mapgen.FromConfig(cfg.Noise))
	in, err := sweepInput(cfg, *mapName)
	if err != nil {
		logger.Error("preparing masks", "error", err)
		os.Exit(1)
	}

	logger.Info("sweeping",
		"knob", *knob,
		"values", len(values),
		"size", fmt.Sprintf("%dx%d", in.Size.W, in.Size.H),
		"workers", *workers,
	)

	rows, err := sweep.Run(context.Background(), in, cfg.Climate, *knob, values, *workers)
	if err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	for _, r := range rows {
		fmt.Printf("%s=%-4d distinct %2d  dominant %-20s %.2f  T %.2f  H %.2f±%.2f\n",
			r.Knob, r.Value, r.Distinct, r.Dominant, r.DominantShare, r.TemperatureMean, r.HumidityMean, r.HumidityStd)
	}

	out, err := report.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		logger.Error("output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		logger.Error("writing config", "error", err)
	}
	if err := out.WriteSweep(rows...); err != nil {
		logger.Error("writing sweep", "error", err)
		os.Exit(1)
	}
	if out != nil {
		logger.Info("sweep written", "dir", out.Dir())
	}
}

// sweepInput loads the named map from the store, or runs the configured
// generator. Knobs always come from the config and -set overrides.
func sweepInput(cfg *config.Config, name string) (climate.Input, error) {
	if name != "" {
		db, err := store.Open(cfg.Store.Path)
		if err != nil {
			return climate.Input{}, err
		}
		defer db.Close()
		m, err := db.Load(name)
		if errors.Is(err, store.ErrNotFound) {
			return climate.Input{}, fmt.Errorf("map %q not found in %s", name, cfg.Store.Path)
		}
		if err != nil {
			return climate.Input{}, err
		}
		return climate.Input{Size: m.Size, Land: m.Land, Mountain: m.Mountain}, nil
	}

	gen, ok := core.LookupGenerator(cfg.World.Generator)
	if !ok {
		return climate.Input{}, fmt.Errorf("unknown generator %q (have %s)",
			cfg.World.Generator, strings.Join(core.GeneratorNames(), ", "))
	}
	size := core.Size{W: cfg.World.Width, H: cfg.World.Height}
	in := climate.Input{
		Size:     size,
		Land:     make([]uint8, size.Cells()),
		Mountain: make([]uint8, size.Cells()),
	}
	gen(size, cfg.World.Seed, in.Land, in.Mountain)
	return in, nil
}
