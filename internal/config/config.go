// Package config loads biome-painter settings from YAML layered over the
// embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"biome-painter/internal/climate"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the editor and the headless tools.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Climate climate.Knobs `yaml:"climate"`
	Noise   NoiseConfig   `yaml:"noise"`
	Output  OutputConfig  `yaml:"output"`
	Store   StoreConfig   `yaml:"store"`
	Log     LogConfig     `yaml:"log"`
}

// WorldConfig holds grid dimensions and the initial map.
type WorldConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Seed      int64  `yaml:"seed"`
	Generator string `yaml:"generator"` // registered mask generator name
	Scale     int    `yaml:"scale"`     // GUI pixel scale
	TPS       int    `yaml:"tps"`
	Brush     int    `yaml:"brush"` // initial brush radius in cells
}

// NoiseConfig tunes the continents generator.
type NoiseConfig struct {
	Scale         float64 `yaml:"scale"`          // base frequency around the cylinder
	Octaves       int     `yaml:"octaves"`
	Lacunarity    float64 `yaml:"lacunarity"`
	Gain          float64 `yaml:"gain"`
	SeaLevel      float64 `yaml:"sea_level"`      // noise above this is land
	MountainLevel float64 `yaml:"mountain_level"` // noise above this is mountain
	PolarFalloff  float64 `yaml:"polar_falloff"`  // land suppression toward the poles
}

// OutputConfig controls what the headless tools write.
type OutputConfig struct {
	Dir string `yaml:"dir"`
	PNG bool   `yaml:"png"`
	CSV bool   `yaml:"csv"`
}

// StoreConfig locates the map database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// LogLevel parses the configured level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// SimOptions flattens the world and climate sections into the key/value map
// understood by the simulation registry.
func (c *Config) SimOptions() map[string]string {
	k := c.Climate
	return map[string]string{
		"w":                strconv.Itoa(c.World.Width),
		"h":                strconv.Itoa(c.World.Height),
		"seed":             strconv.FormatInt(c.World.Seed, 10),
		"generator":        c.World.Generator,
		"brush":            strconv.Itoa(c.World.Brush),
		"itcz_floor":       strconv.FormatBool(k.ITCZFloor),
		"sub_dry":          strconv.FormatBool(k.SubtropicalDry),
		"interior_dist":    strconv.Itoa(k.InteriorDist),
		"interior_dry":     strconv.Itoa(k.InteriorDry),
		"coast_hum":        strconv.Itoa(k.CoastHumidity),
		"coast_range":      strconv.Itoa(k.CoastRange),
		"shadow_strength":  strconv.Itoa(k.ShadowStrength),
		"shadow_range":     strconv.Itoa(k.ShadowRange),
		"cooling":          strconv.Itoa(k.Cooling),
		"ocean_wind_steps": strconv.Itoa(k.OceanWindSteps),
	}
}
