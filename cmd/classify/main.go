package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"biome-painter/internal/config"
	"biome-painter/internal/mapgen"
	"biome-painter/internal/report"
	"biome-painter/internal/sims/biomes"
	"biome-painter/internal/store"
)

func main() {
	configPath := flag.String("config", "", "YAML config file layered over the defaults")
	gen := flag.String("gen", "", "mask generator (empty keeps the config generator)")
	seed := flag.Int64("seed", 0, "generator seed (0 keeps the config seed)")
	load := flag.String("load", "", "classify a saved map instead of generating one")
	save := flag.String("save", "", "save the classified map under this name")
	outDir := flag.String("out", "", "output directory (empty keeps the config dir)")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	if *gen != "" {
		cfg.World.Generator = *gen
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			logger.Error("writing config", "error", err)
			os.Exit(1)
		}
		return
	}

	var db *store.DB
	if *load != "" || *save != "" {
		db, err = store.Open(cfg.Store.Path)
		if err != nil {
			logger.Error("opening store", "path", cfg.Store.Path, "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	var saved *store.Map
	if *load != "" {
		saved, err = db.Load(*load)
		if err != nil {
			logger.Error("loading map", "name", *load, "error", err)
			os.Exit(1)
		}
		cfg.World.Width = saved.Size.W
		cfg.World.Height = saved.Size.H
		cfg.Climate = saved.Knobs
	}

	mapgen.RegisterContinents(mapgen.FromConfig(cfg.Noise))
	opts := cfg.SimOptions()
	opts["w"] = strconv.Itoa(cfg.World.Width)
	opts["h"] = strconv.Itoa(cfg.World.Height)
	world := biomes.NewWithConfig(biomes.FromMap(opts))
	world.SetLogger(logger)

	if saved != nil {
		if err := world.LoadMasks(saved.Land, saved.Mountain); err != nil {
			logger.Error("loading masks", "name", saved.Name, "error", err)
			os.Exit(1)
		}
	} else {
		world.Reset(0)
	}

	world.Compute()
	res := world.State().Result()
	if res == nil {
		logger.Error("classification failed")
		os.Exit(1)
	}
	world.Step()

	summary := report.Summarize(res)
	attrs := []any{
		"size", fmt.Sprintf("%dx%d", summary.Size.W, summary.Size.H),
		"land", summary.Land,
		"ocean", summary.Ocean,
		"coastal", summary.Coastal,
		"landlocked", summary.Landlocked,
		"distinct", summary.Distinct(),
		"temperature_mean", summary.TemperatureMean,
		"humidity_mean", summary.HumidityMean,
	}
	if d, ok := summary.Dominant(); ok {
		attrs = append(attrs, "dominant", d.Biome, "dominant_share", d.Share)
	}
	logger.Info("classified", attrs...)

	out, err := report.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		logger.Error("output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		logger.Error("writing config", "error", err)
	}
	if cfg.Output.CSV {
		if err := out.WriteSummary(summary); err != nil {
			logger.Error("writing summary", "error", err)
		}
	}
	if cfg.Output.PNG {
		if err := out.WriteImage(world.Size(), world.Cells(), world.Palette()); err != nil {
			logger.Error("writing image", "error", err)
		}
	}

	if *save != "" {
		st := world.State()
		m := &store.Map{
			Name:     *save,
			Size:     world.Size(),
			Land:     slices.Clone(st.Land.Cells()),
			Mountain: slices.Clone(st.Mountain.Cells()),
			Knobs:    world.Knobs(),
		}
		if err := db.Save(m); err != nil {
			logger.Error("saving map", "name", *save, "error", err)
			os.Exit(1)
		}
		logger.Info("map saved", "name", *save, "store", cfg.Store.Path)
	}
}
