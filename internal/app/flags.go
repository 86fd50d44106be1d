package app

import (
	"flag"

	"biome-painter/internal/config"
)

// Flags represents the command-line parameters for the editor.
type Flags struct {
	Config    string
	Scale     int
	TPS       int
	Seed      int64
	Generator string
	Map       string
	HUDWidth  int
}

// NewFlags returns Flags with zero overrides and a default map name.
func NewFlags() *Flags {
	return &Flags{Map: "untitled", HUDWidth: 300}
}

// Bind attaches the flags to the provided FlagSet. Zero values leave the
// config file settings in place.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", f.Config, "YAML config file layered over the defaults")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "ticks per second")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "seed for map generation")
	fs.StringVar(&f.Generator, "gen", f.Generator, "initial map generator (blank, continents)")
	fs.StringVar(&f.Map, "map", f.Map, "map name used by load and save")
	fs.IntVar(&f.HUDWidth, "hud", f.HUDWidth, "HUD panel width in pixels (0 hides it)")
}

// Apply overrides config fields with any flags that were set.
func (f *Flags) Apply(cfg *config.Config) {
	if f.Scale > 0 {
		cfg.World.Scale = f.Scale
	}
	if f.TPS > 0 {
		cfg.World.TPS = f.TPS
	}
	if f.Seed != 0 {
		cfg.World.Seed = f.Seed
	}
	if f.Generator != "" {
		cfg.World.Generator = f.Generator
	}
}
