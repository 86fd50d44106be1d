package climate

import (
	"math"
	"strconv"
)

// Knobs holds the per-run climate tunables.
type Knobs struct {
	// ITCZFloor forces a minimum humidity near the equator.
	ITCZFloor bool `yaml:"itcz_floor" json:"itcz_floor"`
	// SubtropicalDry keeps the 25-35 degree dry band; when false that band
	// is forced to humidity 2.
	SubtropicalDry bool `yaml:"sub_dry" json:"sub_dry"`

	InteriorDist   int `yaml:"interior_dist" json:"interior_dist"`
	InteriorDry    int `yaml:"interior_dry" json:"interior_dry"`
	CoastHumidity  int `yaml:"coast_hum" json:"coast_hum"`
	CoastRange     int `yaml:"coast_range" json:"coast_range"`
	ShadowStrength int `yaml:"shadow_strength" json:"shadow_strength"`
	ShadowRange    int `yaml:"shadow_range" json:"shadow_range"`
	Cooling        int `yaml:"cooling" json:"cooling"`
	OceanWindSteps int `yaml:"ocean_wind_steps" json:"ocean_wind_steps"`
}

// DefaultKnobs returns the standard tuning.
func DefaultKnobs() Knobs {
	return Knobs{
		ITCZFloor:      true,
		SubtropicalDry: true,
		InteriorDist:   54,
		InteriorDry:    -1,
		CoastHumidity:  1,
		CoastRange:     12,
		ShadowStrength: 1,
		ShadowRange:    18,
		Cooling:        1,
		OceanWindSteps: 42,
	}
}

// oceanWindShare is the fraction of upwind steps that must cross ocean.
const oceanWindShare = 0.65

// effectiveCoastRange floors the coastal band at zero.
func (k Knobs) effectiveCoastRange() int { return max(0, k.CoastRange) }

// effectiveShadowRange floors the shadow march at one step.
func (k Knobs) effectiveShadowRange() int { return max(1, k.ShadowRange) }

// effectiveOceanWindSteps floors the exposure march at one step.
func (k Knobs) effectiveOceanWindSteps() int { return max(1, k.OceanWindSteps) }

// oceanWindThreshold is round(0.65*steps), at least 1. Halves round up.
func (k Knobs) oceanWindThreshold() int {
	steps := k.effectiveOceanWindSteps()
	return max(1, int(math.Floor(float64(steps)*oceanWindShare+0.5)))
}

// KnobsFromMap overlays string key/value pairs onto the defaults.
// Unparseable values are ignored.
func KnobsFromMap(cfg map[string]string) Knobs {
	k := DefaultKnobs()
	if cfg == nil {
		return k
	}
	if v, ok := cfg["itcz_floor"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			k.ITCZFloor = parsed
		}
	}
	if v, ok := cfg["sub_dry"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			k.SubtropicalDry = parsed
		}
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"interior_dist", &k.InteriorDist},
		{"interior_dry", &k.InteriorDry},
		{"coast_hum", &k.CoastHumidity},
		{"coast_range", &k.CoastRange},
		{"shadow_strength", &k.ShadowStrength},
		{"shadow_range", &k.ShadowRange},
		{"cooling", &k.Cooling},
		{"ocean_wind_steps", &k.OceanWindSteps},
	}
	for _, f := range ints {
		if v, ok := cfg[f.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil {
				*f.dst = parsed
			}
		}
	}
	return k
}

// IntKnob returns a pointer to the integer knob with the given key.
func (k *Knobs) IntKnob(key string) (*int, bool) {
	switch key {
	case "interior_dist":
		return &k.InteriorDist, true
	case "interior_dry":
		return &k.InteriorDry, true
	case "coast_hum":
		return &k.CoastHumidity, true
	case "coast_range":
		return &k.CoastRange, true
	case "shadow_strength":
		return &k.ShadowStrength, true
	case "shadow_range":
		return &k.ShadowRange, true
	case "cooling":
		return &k.Cooling, true
	case "ocean_wind_steps":
		return &k.OceanWindSteps, true
	}
	return nil, false
}

// BoolKnob returns a pointer to the boolean knob with the given key.
func (k *Knobs) BoolKnob(key string) (*bool, bool) {
	switch key {
	case "itcz_floor":
		return &k.ITCZFloor, true
	case "sub_dry":
		return &k.SubtropicalDry, true
	}
	return nil, false
}
