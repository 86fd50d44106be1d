package report

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"biome-painter/internal/config"
	"biome-painter/internal/core"
)

// OutputManager writes run artefacts into one directory.
type OutputManager struct {
	dir       string
	sweepFile *os.File

	sweepHeaderWritten bool
}

// NewOutputManager creates the output directory. Returns nil if dir is empty
// (output disabled); every method is a no-op on a nil manager.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &OutputManager{dir: dir}, nil
}

// WriteConfig saves the effective configuration as config.yaml.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteSummary writes biomes.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := WriteBiomeCSV(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(om.dir, "biomes.csv"), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing biomes.csv: %w", err)
	}
	return nil
}

// WriteImage writes biomes.png from a display buffer.
func (om *OutputManager) WriteImage(size core.Size, cells []uint8, palette []color.RGBA) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(om.dir, "biomes.png"))
	if err != nil {
		return fmt.Errorf("creating biomes.png: %w", err)
	}
	if err := WritePNG(f, size, cells, palette); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteSweep appends rows to sweep.csv, writing the header once.
func (om *OutputManager) WriteSweep(rows ...SweepRow) error {
	if om == nil || len(rows) == 0 {
		return nil
	}
	if om.sweepFile == nil {
		f, err := os.Create(filepath.Join(om.dir, "sweep.csv"))
		if err != nil {
			return fmt.Errorf("creating sweep.csv: %w", err)
		}
		om.sweepFile = f
	}

	if !om.sweepHeaderWritten {
		if err := gocsv.Marshal(rows, om.sweepFile); err != nil {
			return fmt.Errorf("writing sweep: %w", err)
		}
		om.sweepHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, om.sweepFile); err != nil {
		return fmt.Errorf("writing sweep: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes any open output files.
func (om *OutputManager) Close() error {
	if om == nil || om.sweepFile == nil {
		return nil
	}
	return om.sweepFile.Close()
}
