package biomes

import (
	"strconv"

	"biome-painter/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	k := w.cfg.Knobs
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				textParam("generator", "Generator", w.cfg.Generator),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				textParam("brush_mode", "Brush mode", w.brush.String()),
				intParam("brush_radius", "Brush radius", w.radius),
				textParam("view", "View", w.view.String()),
			},
		},
		{
			Name:    "Temperature",
			Summary: "Latitude bands, mountain cooling and ocean currents.",
			Params: []core.Parameter{
				intParam("cooling", "Mountain cooling", k.Cooling),
			},
		},
		{
			Name:    "Humidity",
			Summary: "Coastal moisture, continental drying and rain shadows.",
			Params: []core.Parameter{
				boolParam("itcz_floor", "ITCZ floor", k.ITCZFloor),
				boolParam("sub_dry", "Subtropical dry", k.SubtropicalDry),
				intParam("interior_dist", "Interior distance", k.InteriorDist),
				intParam("interior_dry", "Interior dryness", k.InteriorDry),
				intParam("coast_hum", "Coast humidity", k.CoastHumidity),
				intParam("coast_range", "Coast range", k.CoastRange),
				intParam("ocean_wind_steps", "Ocean wind steps", k.OceanWindSteps),
			},
		},
		{
			Name: "Rain Shadow",
			Params: []core.Parameter{
				intParam("shadow_strength", "Shadow strength", k.ShadowStrength),
				intParam("shadow_range", "Shadow range", k.ShadowRange),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("brush_radius", "Brush radius", 1, BrushRadiusMin, BrushRadiusMax),
		boolControl("itcz_floor", "ITCZ floor"),
		boolControl("sub_dry", "Subtropical dry"),
		intControl("interior_dist", "Interior distance", 2, 1, 200),
		intControl("interior_dry", "Interior dryness", 1, -4, 2),
		intControl("coast_hum", "Coast humidity", 1, -2, 4),
		intControl("coast_range", "Coast range", 1, 0, 60),
		intControl("ocean_wind_steps", "Ocean wind steps", 2, 1, 120),
		intControl("shadow_strength", "Shadow strength", 1, 0, 4),
		intControl("shadow_range", "Shadow range", 1, 1, 60),
		intControl("cooling", "Mountain cooling", 1, 0, 4),
	}
}

// SetIntParameter updates an integer tunable, clamped to its control range.
// Knob changes mark the classification stale.
func (w *World) SetIntParameter(key string, value int) bool {
	if key == "brush_radius" {
		w.SetBrushRadius(value)
		return true
	}
	dst, ok := w.cfg.Knobs.IntKnob(key)
	if !ok {
		return false
	}
	if ctrl, found := controlFor(w.ParameterControls(), key); found {
		value = clampControl(ctrl, value)
	}
	if *dst == value {
		return true
	}
	*dst = value
	w.knobsChanged()
	return true
}

// SetBoolParameter flips a boolean tunable.
func (w *World) SetBoolParameter(key string, value bool) bool {
	dst, ok := w.cfg.Knobs.BoolKnob(key)
	if !ok {
		return false
	}
	if *dst == value {
		return true
	}
	*dst = value
	w.knobsChanged()
	return true
}

func controlFor(controls []core.ParameterControl, key string) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

func clampControl(c core.ParameterControl, v int) int {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

func intControl(key, label string, step, lo, hi int) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeInt,
		Step:   step,
		Min:    lo,
		Max:    hi,
		HasMin: true,
		HasMax: true,
	}
}

func boolControl(key, label string) core.ParameterControl {
	return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeBool}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
