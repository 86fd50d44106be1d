package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// SweepRow is one knob setting evaluated by a sweep.
type SweepRow struct {
	Knob            string  `csv:"knob"`
	Value           int     `csv:"value"`
	Land            int     `csv:"land"`
	Distinct        int     `csv:"distinct_biomes"`
	Dominant        string  `csv:"dominant"`
	DominantShare   float64 `csv:"dominant_share"`
	TemperatureMean float64 `csv:"temperature_mean"`
	HumidityMean    float64 `csv:"humidity_mean"`
	HumidityStd     float64 `csv:"humidity_std"`
}

// NewSweepRow condenses a summary into a sweep row.
func NewSweepRow(knob string, value int, s Summary) SweepRow {
	row := SweepRow{
		Knob:            knob,
		Value:           value,
		Land:            s.Land,
		Distinct:        s.Distinct(),
		TemperatureMean: s.TemperatureMean,
		HumidityMean:    s.HumidityMean,
		HumidityStd:     s.HumidityStd,
	}
	if d, ok := s.Dominant(); ok {
		row.Dominant = d.Biome
		row.DominantShare = d.Share
	}
	return row
}

// WriteBiomeCSV writes one row per biome with a header.
func WriteBiomeCSV(w io.Writer, s Summary) error {
	if err := gocsv.Marshal(s.Biomes, w); err != nil {
		return fmt.Errorf("writing biome csv: %w", err)
	}
	return nil
}

// WriteSweepCSV writes sweep rows with a header.
func WriteSweepCSV(w io.Writer, rows []SweepRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing sweep csv: %w", err)
	}
	return nil
}
