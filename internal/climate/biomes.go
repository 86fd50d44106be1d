package climate

import "fmt"

// BiomeID identifies one of the 25 biomes. Ocean and unclassified cells use
// NoBiome.
type BiomeID int16

// NoBiome marks ocean or not-yet-computed cells.
const NoBiome BiomeID = -1

// Levels is the number of discrete temperature and humidity tiers.
const Levels = 5

// biomeNames is the ordered name table. External legends and renderers key on
// these exact strings.
var biomeNames = [Levels * Levels]string{
	"Permanent ice",
	"Polar desert",
	"Polar tundra",
	"Seasonal ice",
	"Wet glaciers",
	"Cold desert",
	"Dry tundra",
	"Moist tundra",
	"Taiga",
	"Cold wet forest",
	"Temperate desert",
	"Temperate steppe",
	"Grassland",
	"Temperate forest",
	"Temperate rainforest",
	"Hot desert",
	"Hot steppe",
	"Savanna",
	"Tropical forest",
	"Rainforest",
	"Hyper-arid desert",
	"Dry savanna",
	"Humid savanna",
	"Tropical rainforest",
	"Extreme rainforest",
}

// Matrix maps [temperature][humidity] to a biome, coldest/driest at [0][0].
var Matrix = [Levels][Levels]BiomeID{
	{0, 1, 2, 3, 4},      // very low temperature
	{5, 6, 7, 8, 9},      // low
	{10, 11, 12, 13, 14}, // medium
	{15, 16, 17, 18, 19}, // high
	{20, 21, 22, 23, 24}, // very high
}

var biomeByName = map[string]BiomeID{}

func init() {
	if err := validateTables(); err != nil {
		panic(err)
	}
	for i, name := range biomeNames {
		biomeByName[name] = BiomeID(i)
	}
}

func validateTables() error {
	seen := make(map[BiomeID]bool, len(biomeNames))
	for t := range Matrix {
		for h, id := range Matrix[t] {
			if id < 0 || int(id) >= len(biomeNames) {
				return fmt.Errorf("climate: matrix[%d][%d]=%d has no name", t, h, id)
			}
			if seen[id] {
				return fmt.Errorf("climate: biome %d appears twice in matrix", id)
			}
			seen[id] = true
		}
	}
	names := make(map[string]bool, len(biomeNames))
	for _, name := range biomeNames {
		if name == "" || names[name] {
			return fmt.Errorf("climate: biome name %q is empty or duplicated", name)
		}
		names[name] = true
	}
	return nil
}

// Valid reports whether id names a biome.
func (id BiomeID) Valid() bool { return id >= 0 && int(id) < len(biomeNames) }

// String returns the biome name, or "Ocean" for NoBiome.
func (id BiomeID) String() string {
	if !id.Valid() {
		return "Ocean"
	}
	return biomeNames[id]
}

// BiomeNames returns a copy of the ordered name table.
func BiomeNames() []string {
	out := make([]string, len(biomeNames))
	copy(out, biomeNames[:])
	return out
}

// BiomeByName resolves a biome name.
func BiomeByName(name string) (BiomeID, bool) {
	id, ok := biomeByName[name]
	return id, ok
}

// BiomeFor looks up the matrix entry for clamped levels.
func BiomeFor(temperature, humidity int) BiomeID {
	return Matrix[clampLevel(temperature)][clampLevel(humidity)]
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > Levels-1 {
		return Levels - 1
	}
	return v
}
