package biomes

import (
	"strconv"

	"biome-painter/internal/climate"
)

// Config controls the biome editor dimensions, seeding and climate knobs.
type Config struct {
	Width  int
	Height int

	Seed      int64
	Generator string

	BrushRadius int

	Knobs climate.Knobs
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       1080,
		Height:      540,
		Seed:        1337,
		Generator:   "blank",
		BrushRadius: 6,
		Knobs:       climate.DefaultKnobs(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Climate knobs share the map under their own keys.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["generator"]; ok && v != "" {
		c.Generator = v
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BrushRadius = clampBrush(parsed)
		}
	}
	c.Knobs = climate.KnobsFromMap(cfg)
	return c
}
