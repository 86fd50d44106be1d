package climate

import "math"

// Wind is a unit grid step along the prevailing wind. DRow is positive
// toward the south (increasing row), DCol positive toward the east.
type Wind struct {
	DRow int
	DCol int
}

// Reverse returns the upwind step.
func (w Wind) Reverse() Wind { return Wind{DRow: -w.DRow, DCol: -w.DCol} }

type windBand int

const (
	bandTrades windBand = iota
	bandWesterlies
	bandPolar
)

// windTable is keyed by band and hemisphere (0 north, 1 south or equator).
var windTable = [3][2]Wind{
	bandTrades:     {{DRow: 1, DCol: -1}, {DRow: -1, DCol: 1}},
	bandWesterlies: {{DRow: -1, DCol: 1}, {DRow: 1, DCol: -1}},
	bandPolar:      {{DRow: 1, DCol: -1}, {DRow: -1, DCol: 1}},
}

// WindFor returns the prevailing wind step at a latitude in degrees using a
// three-cell circulation: trades below 30, westerlies below 60, polar
// easterlies above.
func WindFor(lat float64) Wind {
	a := math.Abs(lat)
	band := bandPolar
	switch {
	case a < 30:
		band = bandTrades
	case a < 60:
		band = bandWesterlies
	}
	hemi := 1
	if lat > 0 {
		hemi = 0
	}
	return windTable[band][hemi]
}
