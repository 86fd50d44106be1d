//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"biome-painter/internal/app"
	"biome-painter/internal/config"
	"biome-painter/internal/mapgen"
	"biome-painter/internal/sims/biomes"
	"biome-painter/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	flags.Apply(cfg)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	mapgen.RegisterContinents(mapgen.FromConfig(cfg.Noise))

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Warn("map store unavailable, saving disabled", "path", cfg.Store.Path, "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	var saved *store.Map
	if db != nil {
		saved, err = db.Load(flags.Map)
		switch {
		case errors.Is(err, store.ErrNotFound):
			saved = nil
		case err != nil:
			logger.Error("loading map", "name", flags.Map, "error", err)
			saved = nil
		default:
			cfg.World.Width = saved.Size.W
			cfg.World.Height = saved.Size.H
			cfg.Climate = saved.Knobs
		}
	}

	world := biomes.NewWithConfig(biomes.FromMap(cfg.SimOptions()))
	world.SetLogger(logger)
	if saved != nil {
		if err := world.LoadMasks(saved.Land, saved.Mountain); err != nil {
			logger.Error("loading masks", "name", saved.Name, "error", err)
			world.Reset(cfg.World.Seed)
		} else {
			logger.Info("map loaded", "name", saved.Name, "saved_at", saved.SavedAt)
		}
	} else {
		world.Reset(cfg.World.Seed)
	}

	game := app.New(world, cfg.World.Scale, cfg.World.Seed, app.Options{
		HUDWidth: flags.HUDWidth,
		Store:    db,
		MapName:  flags.Map,
		Logger:   logger,
	})
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("biome painter - " + flags.Map)
	ebiten.SetTPS(cfg.World.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run", "error", err)
		os.Exit(1)
	}
}
