package biomes

import "biome-painter/internal/core"

var legendGroups = []struct {
	title string
	names []string
}{
	{"Ocean", []string{"Ocean"}},
	{"Polar & Ice", []string{"Permanent ice", "Seasonal ice", "Wet glaciers", "Polar desert", "Polar tundra"}},
	{"Cold", []string{"Cold desert", "Dry tundra", "Moist tundra", "Taiga", "Cold wet forest"}},
	{"Temperate", []string{"Temperate desert", "Temperate steppe", "Grassland", "Temperate forest", "Temperate rainforest"}},
	{"Hot & Tropical", []string{
		"Hyper-arid desert",
		"Hot desert",
		"Hot steppe",
		"Savanna",
		"Dry savanna",
		"Humid savanna",
		"Tropical forest",
		"Rainforest",
		"Tropical rainforest",
		"Extreme rainforest",
	}},
}

// Legend returns the grouped biome swatches shown next to the map.
func (w *World) Legend() []core.LegendGroup {
	out := make([]core.LegendGroup, 0, len(legendGroups))
	for _, g := range legendGroups {
		group := core.LegendGroup{Title: g.title, Entries: make([]core.LegendEntry, len(g.names))}
		for i, name := range g.names {
			group.Entries[i] = core.LegendEntry{Name: name, Color: BiomeColor(name)}
		}
		out = append(out, group)
	}
	return out
}
