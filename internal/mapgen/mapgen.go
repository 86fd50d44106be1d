// Package mapgen fills land and mountain masks for new maps.
package mapgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"biome-painter/internal/config"
	"biome-painter/internal/core"
)

// Params tunes the continents generator.
type Params struct {
	Scale         float64 // cylinder radius in noise units; larger means smaller continents
	Octaves       int
	Lacunarity    float64
	Gain          float64
	SeaLevel      float64 // normalised elevation above this is land
	MountainLevel float64 // normalised elevation above this is mountain
	PolarFalloff  float64 // elevation removed at the poles, eased in with latitude
}

// DefaultParams returns the standard continent tuning.
func DefaultParams() Params {
	return Params{
		Scale:         2.2,
		Octaves:       5,
		Lacunarity:    2.0,
		Gain:          0.5,
		SeaLevel:      0.56,
		MountainLevel: 0.74,
		PolarFalloff:  0.35,
	}
}

// FromConfig converts the noise section of the config file.
func FromConfig(n config.NoiseConfig) Params {
	return Params{
		Scale:         n.Scale,
		Octaves:       n.Octaves,
		Lacunarity:    n.Lacunarity,
		Gain:          n.Gain,
		SeaLevel:      n.SeaLevel,
		MountainLevel: n.MountainLevel,
		PolarFalloff:  n.PolarFalloff,
	}
}

func init() {
	core.RegisterGenerator("blank", Blank)
	RegisterContinents(DefaultParams())
}

// RegisterContinents installs the continents generator with the given params,
// replacing any previous registration.
func RegisterContinents(p Params) {
	core.RegisterGenerator("continents", Continents(p))
}

// Blank leaves both masks empty: an all-ocean world.
func Blank(_ core.Size, _ int64, land, mountain []uint8) {
	clear(land)
	clear(mountain)
}

// Continents returns a generator that thresholds octave simplex noise sampled
// on a cylinder, so the longitude seam is continuous.
func Continents(p Params) core.Generator {
	if p.Octaves <= 0 {
		p.Octaves = 1
	}
	if p.Scale <= 0 {
		p.Scale = DefaultParams().Scale
	}
	return func(size core.Size, seed int64, land, mountain []uint8) {
		clear(land)
		clear(mountain)
		if size.W <= 0 || size.H <= 0 {
			return
		}
		elev := opensimplex.NewNormalized(seed)
		// One grid step covers the same noise distance in both axes.
		step := 2 * math.Pi * p.Scale / float64(size.W)
		for y := 0; y < size.H; y++ {
			t := size.AbsLatitude(y) / 89
			falloff := p.PolarFalloff * t * t * t
			ny := float64(y) * step
			for x := 0; x < size.W; x++ {
				theta := 2 * math.Pi * float64(x) / float64(size.W)
				nx := math.Cos(theta) * p.Scale
				nz := math.Sin(theta) * p.Scale
				v := octaveNoise(elev, nx, ny, nz, p.Octaves, p.Lacunarity, p.Gain) - falloff
				if v <= p.SeaLevel {
					continue
				}
				i := size.Index(x, y)
				land[i] = 1
				if v > p.MountainLevel {
					mountain[i] = 1
				}
			}
		}
	}
}

// octaveNoise sums fractal octaves of 3D noise, normalised back to [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y, z float64, octaves int, lacunarity, gain float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := 1.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		maxVal += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}

	return total / maxVal
}
