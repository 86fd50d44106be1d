package report

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biome-painter/internal/climate"
	"biome-painter/internal/config"
	"biome-painter/internal/core"
)

func computeIsland(t *testing.T) *climate.Result {
	t.Helper()
	size := core.Size{W: 24, H: 12}
	land := make([]uint8, size.Cells())
	mountain := make([]uint8, size.Cells())
	for y := 3; y <= 8; y++ {
		for x := 6; x <= 17; x++ {
			land[size.Index(x, y)] = 1
		}
	}
	mountain[size.Index(10, 5)] = 1
	res, err := climate.Compute(climate.Input{Size: size, Land: land, Mountain: mountain}, climate.DefaultKnobs())
	require.NoError(t, err)
	return res
}

func TestSummarizeCounts(t *testing.T) {
	res := computeIsland(t)
	s := Summarize(res)

	assert.Equal(t, 72, s.Land)
	assert.Equal(t, 24*12-72, s.Ocean)
	assert.Len(t, s.Biomes, 25)

	total := 0
	share := 0.0
	for i, b := range s.Biomes {
		assert.Equal(t, i, b.ID)
		assert.Equal(t, climate.BiomeID(i).String(), b.Biome)
		total += b.Cells
		share += b.Share
	}
	assert.Equal(t, s.Land, total)
	assert.InDelta(t, 1.0, share, 1e-9)

	assert.GreaterOrEqual(t, s.TemperatureMean, 0.0)
	assert.LessOrEqual(t, s.TemperatureMean, 4.0)
	assert.GreaterOrEqual(t, s.HumidityStd, 0.0)
	assert.Positive(t, s.Coastal)
	assert.Zero(t, s.Landlocked)

	d, ok := s.Dominant()
	require.True(t, ok)
	assert.Positive(t, d.Cells)
	assert.GreaterOrEqual(t, s.Distinct(), 1)
}

func TestSummarizeAllOcean(t *testing.T) {
	size := core.Size{W: 5, H: 5}
	res, err := climate.Compute(climate.Input{
		Size: size, Land: make([]uint8, 25), Mountain: make([]uint8, 25),
	}, climate.DefaultKnobs())
	require.NoError(t, err)

	s := Summarize(res)
	assert.Zero(t, s.Land)
	assert.Equal(t, 25, s.Ocean)
	_, ok := s.Dominant()
	assert.False(t, ok)
	assert.Zero(t, s.Distinct())
}

func TestWriteBiomeCSV(t *testing.T) {
	s := Summarize(computeIsland(t))
	var buf bytes.Buffer
	require.NoError(t, WriteBiomeCSV(&buf, s))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, "id,biome,temperature,humidity,cells,share", lines[0])

	var rows []BiomeCount
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &rows))
	assert.Equal(t, s.Biomes[0].Biome, rows[0].Biome)
}

func TestWritePNG(t *testing.T) {
	size := core.Size{W: 3, H: 2}
	palette := []color.RGBA{{A: 255}, {R: 255, A: 255}}
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, size, []uint8{0, 1, 0, 1, 0, 1}, palette))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	r, _, _, _ := img.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	assert.ErrorIs(t, WritePNG(&buf, size, []uint8{0}, palette), ErrDisplaySize)
}

func TestOutputManagerWritesArtefacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)
	defer om.Close()

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, om.WriteConfig(cfg))

	s := Summarize(computeIsland(t))
	require.NoError(t, om.WriteSummary(s))
	require.NoError(t, om.WriteImage(core.Size{W: 1, H: 1}, []uint8{0}, []color.RGBA{{A: 255}}))
	require.NoError(t, om.WriteSweep(NewSweepRow("coast_range", 1, s)))
	require.NoError(t, om.WriteSweep(NewSweepRow("coast_range", 2, s)))
	require.NoError(t, om.Close())

	for _, name := range []string{"config.yaml", "biomes.csv", "biomes.png", "sweep.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sweep.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header written once")
	assert.True(t, strings.HasPrefix(lines[0], "knob,value,"))
}

func TestNilOutputManagerIsNoop(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)
	assert.NoError(t, om.WriteSummary(Summary{}))
	assert.NoError(t, om.WriteSweep(SweepRow{}))
	assert.Equal(t, "", om.Dir())
	assert.NoError(t, om.Close())
}
