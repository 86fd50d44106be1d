package biomes

import (
	"image/color"

	"biome-painter/internal/climate"
)

// Display values index into biomePalette. Biome view entries come first,
// followed by the same entries dimmed for legend focus, then the editor view.
const (
	displayOcean       = 0
	displayBiomeBase   = 1
	displayDimOffset   = 1 + climate.Levels*climate.Levels
	displayUncomputed  = 2 * displayDimOffset
	displayEditorOcean = displayUncomputed + 2
	displayEditorLand  = displayEditorOcean + 1
	displayMountain    = displayEditorLand + 1 // shade -3 .. 3
	displayPaletteSize = displayMountain + 7
)

// focusDim is how far unfocused cells are pulled toward the ocean color.
const focusDim = 0.75

var (
	oceanColor       = color.NRGBA{R: 0x0b, G: 0x2a, B: 0x3a, A: 255}
	uncomputedColor  = color.NRGBA{R: 0x2a, G: 0x6b, B: 0x3f, A: 255}
	editorOceanColor = color.NRGBA{R: 0x0b, G: 0x1b, B: 0x2b, A: 255}
	editorLandColor  = color.NRGBA{R: 0x2a, G: 0x6b, B: 0x3f, A: 255}
	mountainColor    = color.NRGBA{R: 0x7f, G: 0x8a, B: 0x94, A: 255}
)

var biomeColors = map[string]color.NRGBA{
	"Permanent ice":        {R: 0xe5, G: 0xf6, B: 0xff, A: 255},
	"Wet glaciers":         {R: 0xcf, G: 0xe9, B: 0xff, A: 255},
	"Seasonal ice":         {R: 0xd6, G: 0xf0, B: 0xff, A: 255},
	"Polar desert":         {R: 0xd0, G: 0xd6, B: 0xdf, A: 255},
	"Polar tundra":         {R: 0x9f, G: 0xb3, B: 0xb8, A: 255},
	"Cold desert":          {R: 0xb6, G: 0xad, B: 0x94, A: 255},
	"Dry tundra":           {R: 0x8a, G: 0x9a, B: 0x7c, A: 255},
	"Moist tundra":         {R: 0x6b, G: 0x8f, B: 0x6f, A: 255},
	"Taiga":                {R: 0x2f, G: 0x6a, B: 0x50, A: 255},
	"Cold wet forest":      {R: 0x24, G: 0x7b, B: 0x62, A: 255},
	"Temperate desert":     {R: 0xe1, G: 0xc9, B: 0x8f, A: 255},
	"Temperate steppe":     {R: 0xb7, G: 0xc5, B: 0x6f, A: 255},
	"Grassland":            {R: 0x7e, G: 0xcf, B: 0x6b, A: 255},
	"Temperate forest":     {R: 0x2f, G: 0x9a, B: 0x4b, A: 255},
	"Temperate rainforest": {R: 0x1e, G: 0x8f, B: 0x68, A: 255},
	"Hot desert":           {R: 0xf0, G: 0xd0, B: 0x82, A: 255},
	"Hyper-arid desert":    {R: 0xf6, G: 0xe6, B: 0xb2, A: 255},
	"Hot steppe":           {R: 0xd8, G: 0xc1, B: 0x5e, A: 255},
	"Savanna":              {R: 0xb7, G: 0xd3, B: 0x5f, A: 255},
	"Dry savanna":          {R: 0xc7, G: 0xc7, B: 0x68, A: 255},
	"Humid savanna":        {R: 0x9e, G: 0xdb, B: 0x6a, A: 255},
	"Tropical forest":      {R: 0x30, G: 0xa3, B: 0x56, A: 255},
	"Rainforest":           {R: 0x14, G: 0x90, B: 0x58, A: 255},
	"Tropical rainforest":  {R: 0x0f, G: 0x83, B: 0x48, A: 255},
	"Extreme rainforest":   {R: 0x0b, G: 0x71, B: 0x3f, A: 255},
}

var biomePalette = buildBiomePalette()

// Palette exposes the color palette used for rendering the biome map.
func (w *World) Palette() []color.RGBA {
	return biomePalette
}

// BiomeColor returns the display color of a legend entry. Unknown names get
// the uncomputed land color.
func BiomeColor(name string) color.RGBA {
	if name == "Ocean" {
		return toRGBA(oceanColor)
	}
	if c, ok := biomeColors[name]; ok {
		return toRGBA(c)
	}
	return toRGBA(uncomputedColor)
}

func buildBiomePalette() []color.RGBA {
	palette := make([]color.RGBA, displayPaletteSize)
	set := func(idx int, c color.NRGBA) {
		palette[idx] = toRGBA(c)
		palette[idx+displayDimOffset] = toRGBA(blendColors(c, oceanColor, focusDim))
	}
	set(displayOcean, oceanColor)
	for id, name := range climate.BiomeNames() {
		set(displayBiomeBase+id, biomeColors[name])
	}
	palette[displayUncomputed] = toRGBA(uncomputedColor)
	palette[displayUncomputed+1] = toRGBA(blendColors(uncomputedColor, oceanColor, focusDim))
	palette[displayEditorOcean] = toRGBA(editorOceanColor)
	palette[displayEditorLand] = toRGBA(editorLandColor)
	for s := -3; s <= 3; s++ {
		palette[displayMountain+s+3] = toRGBA(shadeColor(mountainColor, s))
	}
	return palette
}

// shadeColor lightens positive shades toward white and darkens negative
// shades toward black, 8% per step.
func shadeColor(c color.NRGBA, shade int) color.NRGBA {
	switch {
	case shade > 0:
		return blendColors(c, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0.08*float64(shade))
	case shade < 0:
		return blendColors(c, color.NRGBA{A: 255}, 0.08*float64(-shade))
	default:
		return c
	}
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

func (w *World) rebuildDisplay() {
	w.redraw = false
	if w.view == ViewEditor {
		w.rebuildEditorDisplay()
		return
	}

	land := w.state.Land.Cells()
	res := w.state.Result()
	for i := range w.display {
		var value int
		switch {
		case land[i] == 0:
			value = displayOcean
		case res == nil || !res.Cells[i].Classified():
			value = displayUncomputed
		default:
			value = displayBiomeBase + int(res.Cells[i].BiomeID())
		}
		if w.focus != "" && w.cellName(i) != w.focus {
			if value == displayUncomputed {
				value++
			} else {
				value += displayDimOffset
			}
		}
		w.display[i] = uint8(value)
	}
}

func (w *World) rebuildEditorDisplay() {
	land := w.state.Land.Cells()
	mtn := w.state.Mountain.Cells()
	if w.masksChanged {
		w.shade = climate.Hillshade(w.Size(), mtn)
		w.masksChanged = false
	}
	for i := range w.display {
		switch {
		case land[i] == 0:
			w.display[i] = displayEditorOcean
		case mtn[i] != 0:
			w.display[i] = uint8(displayMountain + int(w.shade[i]) + 3)
		default:
			w.display[i] = displayEditorLand
		}
	}
}
