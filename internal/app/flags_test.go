package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biome-painter/internal/config"
)

func TestFlagsApplyOverrides(t *testing.T) {
	f := NewFlags()
	fs := flag.NewFlagSet("biomes", flag.ContinueOnError)
	f.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "2", "-seed", "9", "-gen", "blank", "-map", "earth"}))

	cfg, err := config.Load("")
	require.NoError(t, err)
	tps := cfg.World.TPS
	f.Apply(cfg)

	assert.Equal(t, 2, cfg.World.Scale)
	assert.Equal(t, int64(9), cfg.World.Seed)
	assert.Equal(t, "blank", cfg.World.Generator)
	assert.Equal(t, tps, cfg.World.TPS, "unset flags keep config values")
	assert.Equal(t, "earth", f.Map)
}

func TestFlagsDefaultsLeaveConfig(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	want := *cfg
	NewFlags().Apply(cfg)
	assert.Equal(t, want, *cfg)
}
